package javagen

import (
	"context"
	"io"
	"os/exec"

	"github.com/kballard/go-shellquote"

	"github.com/teranos/jpoet/errors"
)

// RunHook runs the post-generate command with the written files appended to
// its arguments. The command is split like a shell would split it, without
// running a shell. An empty command does nothing.
func RunHook(ctx context.Context, command string, files []string, stdout, stderr io.Writer) error {
	args, err := shellquote.Split(command)
	if err != nil {
		return errors.WithHint(
			errors.NewInvalidConfigError("cannot parse post_generate command %q: %v", command, err),
			"check the quoting of generate.post_generate in jpoet.toml")
	}
	if len(args) == 0 {
		return nil
	}

	cmd := exec.CommandContext(ctx, args[0], append(args[1:], files...)...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "post_generate command %s failed", args[0])
	}
	return nil
}
