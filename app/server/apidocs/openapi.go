package apidocs

import (
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"net/http"
	"regexp"
	"strconv"
	"strings"
)

const securitySchemeName = "bearerAuth"

var pathParamPattern = regexp.MustCompile(`:(\w+)`)

// Spec 根据已经注册的 echo 路由生成 OpenAPI 文档，protected 中的路由需要 Bearer token
func Spec(title, version string, routes, protected []*echo.Route) *openapi3.T {
	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:   title,
			Version: version,
		},
		Paths: openapi3.NewPaths(),
	}

	components := openapi3.NewComponents()
	components.SecuritySchemes = openapi3.SecuritySchemes{
		securitySchemeName: &openapi3.SecuritySchemeRef{
			Value: &openapi3.SecurityScheme{
				Type:         "http",
				Scheme:       "bearer",
				BearerFormat: "JWT",
			},
		},
	}
	doc.Components = &components

	secured := make(map[string]bool, len(protected))
	for _, r := range protected {
		secured[r.Method+" "+r.Path] = true
	}

	for _, r := range routes {
		// 静态文件和 echo 自动添加的路由不写进文档
		if strings.Contains(r.Path, "*") || !strings.HasPrefix(r.Path, "/api") {
			continue
		}

		openapiPath, params := convertPath(r.Path)

		op := openapi3.NewOperation()
		op.OperationID = operationID(r.Name)
		op.Responses = responses(secured[r.Method+" "+r.Path])
		for _, name := range params {
			op.AddParameter(openapi3.NewPathParameter(name).WithSchema(openapi3.NewIntegerSchema()))
		}
		if secured[r.Method+" "+r.Path] {
			op.Security = &openapi3.SecurityRequirements{
				openapi3.NewSecurityRequirement().Authenticate(securitySchemeName),
			}
		}

		doc.AddOperation(openapiPath, r.Method, op)
	}

	return doc
}

// convertPath 把 /projects/:id 转换成 /projects/{id}
func convertPath(echoPath string) (string, []string) {
	var params []string
	for _, m := range pathParamPattern.FindAllStringSubmatch(echoPath, -1) {
		params = append(params, m[1])
	}
	return pathParamPattern.ReplaceAllString(echoPath, "{$1}"), params
}

// operationID 从 handler 名称中取出方法名，例如 portfolio-cms/app/server/handlers.(*App).SkillList-fm
func operationID(handlerName string) string {
	name := strings.TrimSuffix(handlerName, "-fm")
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return name
}

func responses(secured bool) *openapi3.Responses {
	res := openapi3.NewResponses()

	add := func(status int) {
		desc := http.StatusText(status)
		res.Set(strconv.Itoa(status), &openapi3.ResponseRef{
			Value: &openapi3.Response{Description: &desc},
		})
	}

	add(http.StatusOK)
	add(http.StatusBadRequest)
	if secured {
		add(http.StatusUnauthorized)
	}
	add(http.StatusInternalServerError)

	return res
}
