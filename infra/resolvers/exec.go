package resolvers

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/openathletics/flextime/infra/logger"
)

// ExecResolver shells out to an external agent command. The request goes on
// the command line as --prompt, with accumulated context as --system-prompt,
// and the agent's stdout is the step output.
type ExecResolver struct {
	name    string
	command string
	args    []string
	log     logger.Logger
}

func NewExecResolver(name, command string, args []string, log logger.Logger) *ExecResolver {
	return &ExecResolver{name: name, command: command, args: args, log: log}
}

func (r *ExecResolver) Name() string { return r.name }

func (r *ExecResolver) Invoke(ctx context.Context, input, prior string) (string, error) {
	args := append([]string{}, r.args...)
	args = append(args, "--prompt", input)
	if prior != "" {
		args = append(args, "--system-prompt", prior)
	}

	cmd := exec.CommandContext(ctx, r.command, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	r.log.Debugf("executing %s resolver: %s", r.name, r.command)
	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail != "" {
			return "", fmt.Errorf("%s: %w: %s", r.command, err, detail)
		}
		return "", fmt.Errorf("%s: %w", r.command, err)
	}
	return stdout.String(), nil
}
