package registry

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// LoadFile replaces the registry snapshot with the venue document at path.
// The swap is atomic: concurrent readers observe either the previous or the
// new snapshot, never a mix. The built-in global pair table is retained;
// venue documents only carry per-venue overrides.
//
// On error the current snapshot is kept, so callers can log a warning and
// continue on fallback data.
func (r *Registry) LoadFile(path string) error {
	k := koanf.New(".")
	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return fmt.Errorf("unsupported venue data format: %s", path)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return fmt.Errorf("read venue data: %w", err)
	}
	var doc Document
	if err := k.UnmarshalWithConf("", &doc, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return fmt.Errorf("decode venue data: %w", err)
	}
	if len(doc.Schools) == 0 {
		return fmt.Errorf("venue data %s defines no schools", path)
	}
	r.snap.Store(&snapshot{
		schools:   doc.Schools,
		pairHours: fallbackPairHours(),
	})
	r.log.Infof("venue data loaded: %d schools from %s", len(doc.Schools), path)
	return nil
}
