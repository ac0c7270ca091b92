package apidocs

import (
	"bytes"
	"github.com/labstack/echo/v4"
	"html/template"
	"net/http"
	"path"
)

type Opts func(*config)

type config struct {
	// SpecURL 文档页面加载 spec 的地址
	SpecURL string
	// 返回 false 时响应 403
	Authorizer func(*http.Request) bool
}

func WithAuthorizer(authorizer func(*http.Request) bool) Opts {
	return func(cfg *config) {
		cfg.Authorizer = authorizer
	}
}

// Doc 在 basePath 下提供文档页面和 JSON spec ，其他请求交给下一个 handler
func Doc(basePath string, specJSON []byte, opts ...Opts) echo.MiddlewareFunc {
	cfg := &config{
		SpecURL: path.Join(basePath, "apispec.json"),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	docPath := path.Join(basePath, "apidocs")

	buf := bytes.NewBuffer(nil)
	_ = template.Must(template.New("apidoc").Parse(pageTemplate)).Execute(buf, cfg)
	uiHTML := buf.String()

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			reqPath := c.Request().URL.Path
			if reqPath != basePath && reqPath != docPath && reqPath != cfg.SpecURL {
				return next(c)
			}

			if cfg.Authorizer != nil && !cfg.Authorizer(c.Request()) {
				return c.String(http.StatusForbidden, "Forbidden")
			}

			switch reqPath {
			case docPath:
				return c.HTML(http.StatusOK, uiHTML)
			case cfg.SpecURL:
				return c.JSONBlob(http.StatusOK, specJSON)
			default:
				return c.Redirect(http.StatusFound, docPath)
			}
		}
	}
}

const pageTemplate = `
<!DOCTYPE html>
<html lang="en">
  <head>
    <title>API documentation</title>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1" />
  </head>

  <body>
    <script id="api-reference" data-url="{{ .SpecURL }}"></script>

    <script src="https://cdnjs.cloudflare.com/ajax/libs/scalar-api-reference/1.25.99/standalone.min.js" integrity="sha512-ai3lOYZ5efNXMYwnqhz0mnCaImbqfwLE1VCx9Y9nhB3OJX4/uegjIAoQtJHy3SILHp/gS1OlPCIeNFPZT5i2WQ==" crossorigin="anonymous" referrerpolicy="no-referrer"></script>
  </body>
</html>`
