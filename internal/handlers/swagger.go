package handlers

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
)

var swaggerPage = template.Must(template.New("swagger").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>{{.Title}}</title>
    <link rel="stylesheet" type="text/css" href="https://cdn.jsdelivr.net/npm/swagger-ui-dist@5/swagger-ui.css">
    <style>body { margin: 0; }</style>
</head>
<body>
    <div id="swagger-ui"></div>
    <script src="https://cdn.jsdelivr.net/npm/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
    <script>
        window.onload = function() {
            window.ui = SwaggerUIBundle({
                url: {{.DocURL}},
                dom_id: '#swagger-ui',
                deepLinking: true,
                persistAuthorization: true,
                requestInterceptor: (request) => {
                    const auth = request.headers.Authorization;
                    if (auth && !auth.startsWith('Bearer ')) {
                        request.headers.Authorization = 'Bearer ' + auth;
                    }
                    return request;
                }
            });
        };
    </script>
</body>
</html>
`))

// SwaggerUI serves a Swagger page for docURL. Tokens pasted into the
// Authorize dialog get the Bearer prefix added automatically.
func SwaggerUI(title, docURL string) gin.HandlerFunc {
	data := struct {
		Title  string
		DocURL string
	}{title, docURL}

	return func(c *gin.Context) {
		c.Status(http.StatusOK)
		c.Header("Content-Type", "text/html; charset=utf-8")
		if err := swaggerPage.Execute(c.Writer, data); err != nil {
			c.Error(err)
		}
	}
}
