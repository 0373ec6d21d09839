package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/agileboot/agileboot-cli/internal/client/agileboot"
	"github.com/agileboot/agileboot-cli/internal/config"
	"github.com/agileboot/agileboot-cli/internal/logger"
)

// RouteFormat selects how the route tree is printed.
type RouteFormat string

const (
	// RouteFormatTree prints an indented, coloured tree.
	RouteFormatTree RouteFormat = "tree"
	// RouteFormatJSON prints the routes as indented JSON.
	RouteFormatJSON RouteFormat = "json"
	// RouteFormatYAML prints the routes as YAML.
	RouteFormatYAML RouteFormat = "yaml"
)

// ErrUnknownRouteFormat is returned for an unsupported --format value.
var ErrUnknownRouteFormat = errors.New("unknown route format, expected tree, json or yaml")

// ParseRouteFormat parses a route format name, case-insensitively.
func ParseRouteFormat(value string) (RouteFormat, error) {
	switch format := RouteFormat(strings.ToLower(strings.TrimSpace(value))); format {
	case RouteFormatTree, RouteFormatJSON, RouteFormatYAML:
		return format, nil
	case "":
		return RouteFormatTree, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRouteFormat, value)
	}
}

// ExecuteRoutesCommand prints the route tree of the current user.
func ExecuteRoutesCommand(ctx context.Context, cfg *config.Config, format RouteFormat) {
	mustHaveAuthToken(ctx, cfg)

	s := newSessionService(ctx, cfg)

	routes, err := s.Routes(ctx)
	if err != nil {
		logger.Fatalf(ctx, "Failed to get routes: %v", err)
	}

	if len(routes) == 0 && (format == RouteFormatTree || format == "") {
		logger.Info(ctx, "No routes are available for the current user")

		return
	}

	if err = writeRoutes(os.Stdout, routes, format); err != nil {
		logger.Fatalf(ctx, "Failed to print routes: %v", err)
	}
}

// writeRoutes renders routes in the given format. An empty list is written as [] in json and yaml.
func writeRoutes(out io.Writer, routes []agileboot.RouteItem, format RouteFormat) error {
	if routes == nil {
		routes = []agileboot.RouteItem{}
	}

	switch format {
	case RouteFormatJSON:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")

		return encoder.Encode(routes)
	case RouteFormatYAML:
		encoder := yaml.NewEncoder(out)
		encoder.SetIndent(2) //nolint:mnd // Two spaces match the rest of the generated YAML.

		if err := encoder.Encode(routes); err != nil {
			return err
		}

		return encoder.Close()
	case RouteFormatTree, "":
		renderRouteTree(out, routes)

		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownRouteFormat, format)
	}
}

var (
	//nolint:gochecknoglobals // Shared colour palette of the tree view.
	routeIDColor = color.New(color.FgCyan, color.Bold)
	//nolint:gochecknoglobals // Shared colour palette of the tree view.
	routeTitleColor = color.New(color.FgGreen)
	//nolint:gochecknoglobals // Shared colour palette of the tree view.
	routeDetailColor = color.New(color.Faint)
)

// renderRouteTree writes one line per route, children indented below their parent.
func renderRouteTree(out io.Writer, routes []agileboot.RouteItem) {
	renderRouteLevel(out, routes, "")
}

func renderRouteLevel(out io.Writer, routes []agileboot.RouteItem, prefix string) {
	for i := range routes {
		route := &routes[i]
		isLast := i == len(routes)-1

		branch, childPrefix := "├── ", prefix+"│   "
		if isLast {
			branch, childPrefix = "└── ", prefix+"    "
		}

		fmt.Fprintf(out, "%s%s%s\n", prefix, branch, describeRoute(route))

		if len(route.Children) > 0 {
			renderRouteLevel(out, route.Children, childPrefix)
		}
	}
}

func describeRoute(route *agileboot.RouteItem) string {
	parts := []string{routeIDColor.Sprint(route.Meta.ID)}

	if route.Meta.Title != "" {
		parts = append(parts, routeTitleColor.Sprint(route.Meta.Title))
	}

	var details []string

	if route.Component != "" {
		details = append(details, "component: "+route.Component)
	}

	if route.Redirect != "" {
		details = append(details, "redirect: "+route.Redirect)
	}

	if route.Meta.FrameSrc != "" {
		details = append(details, "frame: "+route.Meta.FrameSrc)
	}

	if len(route.Meta.Auths) > 0 {
		details = append(details, "auths: "+strings.Join(route.Meta.Auths, ","))
	}

	if route.Meta.ShowLink != nil && !*route.Meta.ShowLink {
		details = append(details, "hidden")
	}

	if len(details) > 0 {
		parts = append(parts, routeDetailColor.Sprint("["+strings.Join(details, "; ")+"]"))
	}

	return strings.Join(parts, " ")
}
