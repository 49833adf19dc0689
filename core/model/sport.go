package model

// Sport identifies a scheduled sport. Codes follow the conference data feeds:
// gendered sports carry an m/w prefix.
type Sport string

const (
	SportMensBasketball   Sport = "mbasketball"
	SportWomensBasketball Sport = "wbasketball"
	SportFootball         Sport = "football"
	SportBaseball         Sport = "baseball"
	SportSoftball         Sport = "softball"
	SportMensTennis       Sport = "mtennis"
	SportWomensTennis     Sport = "wtennis"
	SportVolleyball       Sport = "volleyball"
	SportSoccer           Sport = "soccer"
	SportWrestling        Sport = "wrestling"
	SportGymnastics       Sport = "gymnastics"
	SportLacrosse         Sport = "lacrosse"
)

// Sports lists every sport the scheduler knows about.
var Sports = []Sport{
	SportMensBasketball, SportWomensBasketball, SportFootball,
	SportBaseball, SportSoftball, SportMensTennis, SportWomensTennis,
	SportVolleyball, SportSoccer, SportWrestling, SportGymnastics,
	SportLacrosse,
}

func (s Sport) String() string { return string(s) }

// TransitionKey collapses the gendered basketball codes to a single key.
// Court setup is identical for the men's and women's programs, so transition
// tables only carry one basketball entry.
func (s Sport) TransitionKey() string {
	if s == SportMensBasketball || s == SportWomensBasketball {
		return "basketball"
	}
	return string(s)
}

// IsBasketballPair reports whether s and other are the men's/women's
// basketball pair, in either order.
func IsBasketballPair(a, b Sport) bool {
	return (a == SportMensBasketball && b == SportWomensBasketball) ||
		(a == SportWomensBasketball && b == SportMensBasketball)
}

// IsTennisPair reports whether a and b are the men's/women's tennis pair, in
// either order.
func IsTennisPair(a, b Sport) bool {
	return (a == SportMensTennis && b == SportWomensTennis) ||
		(a == SportWomensTennis && b == SportMensTennis)
}

// Outdoor reports whether the sport is played outdoors and therefore subject
// to weather risk assessment.
func (s Sport) Outdoor() bool {
	switch s {
	case SportFootball, SportBaseball, SportSoftball, SportSoccer, SportLacrosse:
		return true
	}
	return false
}
