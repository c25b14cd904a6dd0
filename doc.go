// Package figmaprojects fetches the file list of a Figma project via the
// Figma REST API and renders it as a structured dump (markdown, JSON or YAML).
//
// The CLI lives in cmd/figma-projects; this root package exposes the same
// pipeline as a Go API so that callers can embed it in their own tools.
//
// # Import
//
// The module path contains a hyphen but Go package names cannot, so the
// package is named figmaprojects:
//
//	import "github.com/kataras/figma-projects" // package figmaprojects
//
// # Quick start
//
//	result, err := figmaprojects.Run(ctx, figmaprojects.Options{
//	    AccessToken: os.Getenv("FIGMA_ACCESS_TOKEN"),
//	    ProjectID:   5027923,
//	    Format:      formatter.YAML,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(result.Output)
//
// # Errors
//
// Every failure carries a [figma.ErrorKind]: figma.ConfigError (rejected
// before any request), figma.TransportError (network failure, cancellation
// or a non-2xx status) or figma.SchemaMismatch (the body does not match the
// resource model). Test for them with errors.Is:
//
//	if errors.Is(err, figma.TransportError) { ... }
//
// # Logging
//
// Pass a [Logger] implementation in [Options.Logger] to receive progress
// messages. A nil Logger silences all output. A *zap.SugaredLogger can be
// passed as is.
package figmaprojects
