package cli

import (
	"bufio"
	"context"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/tierforum/internal/client/client"
	"github.com/dmitrijs2005/tierforum/internal/client/config"
	"github.com/dmitrijs2005/tierforum/internal/client/models"
)

type App struct {
	config *config.Config
	client client.Client
	reader *bufio.Reader
	out    io.Writer
	user   *models.User
}

func NewApp(c *config.Config) (*App, error) {
	apiClient, err := client.NewForumClient(c.ServerEndpointAddr)
	if err != nil {
		return nil, err
	}

	return newApp(c, apiClient, os.Stdin, os.Stdout), nil
}

func newApp(c *config.Config, cl client.Client, in io.Reader, out io.Writer) *App {
	return &App{config: c, client: cl, reader: bufio.NewReader(in), out: out}
}

// Run blocks until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	defer a.client.Close()

	printlnFn("Welcome to TierForum (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) isSignedIn() bool {
	return a.client.SignedIn()
}

func (a *App) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := a.config.RequestTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return context.WithTimeout(ctx, timeout)
}
