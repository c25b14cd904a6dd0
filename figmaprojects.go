package figmaprojects

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/kataras/figma-projects/pkg/figma"
	"github.com/kataras/figma-projects/pkg/formatter"
)

// Options configures a project dump.
type Options struct {
	APIRoot     string // default figma.DefaultAPIRoot
	AccessToken string
	ProjectID   uint64
	Format      formatter.Format // default formatter.Markdown
	HTTPClient  *http.Client     // nil = default client
	Logger      Logger           // nil = no logging
}

// Logger receives progress messages. A nil Logger means silent operation.
// A *zap.SugaredLogger satisfies it.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Result contains the fetched project and its rendered dump.
type Result struct {
	Project *figma.ProjectDetails
	Output  string // rendered in Options.Format
}

func (o *Options) logInfo(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Infof(f, a...)
	}
}

func (o *Options) logWarn(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Warnf(f, a...)
	}
}

func (o *Options) logError(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Errorf(f, a...)
	}
}

// Run fetches the files of a Figma project and renders them.
// Errors keep their figma.ErrorKind, so errors.Is(err, figma.ConfigError) and
// the other kinds work on the returned error.
func Run(ctx context.Context, opts Options) (*Result, error) {
	// Apply defaults.
	if opts.APIRoot == "" {
		opts.APIRoot = figma.DefaultAPIRoot
	}
	if opts.Format == "" {
		opts.Format = formatter.Markdown
	}

	cfg := figma.Config{
		APIRoot:     opts.APIRoot,
		AccessToken: opts.AccessToken,
		ProjectID:   opts.ProjectID,
	}

	opts.logInfo("Validating configuration...")
	if !opts.Format.Valid() {
		err := &figma.Error{
			Kind: figma.ConfigError,
			Op:   "validate options",
			Err:  fmt.Errorf("invalid format %q", opts.Format),
		}
		opts.logError("Invalid configuration: %v", err)
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		opts.logError("Invalid configuration: %v", err)
		return nil, err
	}
	opts.logInfo("API root: %s, project: %d, token: %s", cfg.APIRoot, cfg.ProjectID, figma.MaskToken(cfg.AccessToken))

	opts.logInfo("Fetching project files from Figma...")
	project, err := figma.FetchProjectFiles(ctx, cfg, figma.WithHTTPClient(opts.HTTPClient))
	if err != nil {
		opts.logError("Fetching project %d failed: %v", cfg.ProjectID, err)
		return nil, fmt.Errorf("fetch project %d: %w", cfg.ProjectID, err)
	}
	opts.logInfo("Project: %s", project.Name)

	if len(project.Files) == 0 {
		opts.logWarn("Project %d has no files", cfg.ProjectID)
	} else {
		opts.logInfo("Retrieved %d file(s)", len(project.Files))
	}

	opts.logInfo("Rendering %s output...", opts.Format)
	var buf bytes.Buffer
	if err := formatter.Render(&buf, project, opts.Format); err != nil {
		return nil, fmt.Errorf("render %s: %w", opts.Format, err)
	}

	return &Result{
		Project: project,
		Output:  buf.String(),
	}, nil
}
