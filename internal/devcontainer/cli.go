package devcontainer

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"sync"

	"github.com/Siddhant-K-code/mcp-devcontainer/internal/logger"
)

var log = logger.ForComponent("devcontainer-cli")

// CLI wraps the external devcontainer command-line tool. The engine never
// calls this directly; it exists for the tools that build and enter
// containers from a generated configuration.
type CLI struct {
	binary    string
	once      sync.Once
	available bool
}

func NewCLI(binary string) *CLI {
	if binary == "" {
		binary = "devcontainer"
	}
	return &CLI{binary: binary}
}

func (c *CLI) Available() bool {
	c.once.Do(func() {
		_, err := exec.LookPath(c.binary)
		c.available = err == nil
	})
	return c.available
}

// Up builds and starts the container for a workspace folder.
func (c *CLI) Up(ctx context.Context, workspaceFolder string) (string, error) {
	return c.run(ctx, "up", "--workspace-folder", workspaceFolder)
}

// Exec runs a command inside the workspace's running container.
func (c *CLI) Exec(ctx context.Context, workspaceFolder string, command []string) (string, error) {
	args := append([]string{"exec", "--workspace-folder", workspaceFolder}, command...)
	return c.run(ctx, args...)
}

func (c *CLI) run(ctx context.Context, args ...string) (string, error) {
	if !c.Available() {
		return "", fmt.Errorf("%s CLI not found in PATH", c.binary)
	}

	log.Debug("running devcontainer CLI", "args", args)

	cmd := exec.CommandContext(ctx, c.binary, args...)
	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf

	if err := cmd.Run(); err != nil {
		return buf.String(), fmt.Errorf("devcontainer %s failed: %w", args[0], err)
	}

	return buf.String(), nil
}
