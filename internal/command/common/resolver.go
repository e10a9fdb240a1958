package common

import (
	"context"
	"io"
	"net/url"
	"path/filepath"
	"regexp"

	"github.com/Bornholm/amatl/pkg/resolver"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"
	"gopkg.in/yaml.v2"
)

func NewResolverSourceFromFlagFunc(flag string) func(cCtx *cli.Context) (altsrc.InputSourceContext, error) {
	return func(cCtx *cli.Context) (altsrc.InputSourceContext, error) {
		if urlStr := cCtx.String(flag); urlStr != "" {
			return NewResolvedInputSource(cCtx.Context, urlStr)
		}

		return altsrc.NewMapInputSource("", map[any]any{}), nil
	}
}

func NewResolvedInputSource(ctx context.Context, urlStr string) (altsrc.InputSourceContext, error) {
	url, err := parseConfigURL(urlStr)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse url '%s'", urlStr)
	}

	reader, err := resolver.Resolve(ctx, url)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	defer func() {
		if err := reader.Close(); err != nil {
			panic(errors.WithStack(err))
		}
	}()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	ext := filepath.Ext(url.Path)
	switch ext {
	case ".json":
		fallthrough
	case ".yaml":
		fallthrough
	case ".yml":
		var values map[any]any

		if err := yaml.Unmarshal(data, &values); err != nil {
			return nil, errors.WithStack(err)
		}

		if url.Scheme == "file" {
			values = rewriteRelativePaths(filepath.Dir(url.Path), values)
		}

		return altsrc.NewMapInputSource(urlStr, values), nil

	default:
		return nil, errors.Errorf("no parser associated with '%s' file extension", ext)
	}
}

// parseConfigURL parses the given string as an URL, local paths
// being converted to absolute file:// URLs
func parseConfigURL(urlStr string) (*url.URL, error) {
	u, err := url.Parse(urlStr)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if u.Scheme != "" {
		return u, nil
	}

	absPath, err := filepath.Abs(urlStr)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &url.URL{Scheme: "file", Path: filepath.ToSlash(absPath)}, nil
}

// rewriteRelativePaths resolves the relative paths found in the
// configuration values against the configuration file directory
func rewriteRelativePaths(dir string, values map[any]any) map[any]any {
	for key, rawValue := range values {
		value, ok := rawValue.(string)
		if !ok {
			continue
		}

		if !isPath(value) || filepath.IsAbs(value) {
			continue
		}

		values[key] = filepath.Join(dir, value)
	}

	return values
}

var filepathRegExp = regexp.MustCompile(`^(?i)(?:\/[^\/]+)+\/?[^\s]+(?:\.[^\s]+)+|[^\s]+(?:\.[^\s]+)+$`)

func isPath(str string) bool {
	return filepathRegExp.MatchString(str)
}
