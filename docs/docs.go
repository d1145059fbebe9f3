// Package docs holds the OpenAPI description served at /swagger/doc.json.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support",
            "url": "https://codeberg.org/bookshelf/server"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {"get": {"tags": ["health"], "summary": "Health check", "responses": {"200": {"description": "OK"}, "503": {"description": "Database unreachable"}}}},
        "/api/v1/ping": {"get": {"tags": ["health"], "summary": "Ping", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/auth/signin": {"post": {"tags": ["auth"], "summary": "Sign in", "responses": {"200": {"description": "OK"}, "401": {"$ref": "#/responses/Error"}, "429": {"$ref": "#/responses/Error"}}}},
        "/api/v1/auth/signup": {"post": {"tags": ["auth"], "summary": "Sign up", "responses": {"201": {"description": "Created"}, "409": {"$ref": "#/responses/Error"}}}},
        "/api/v1/auth/me": {"get": {"tags": ["auth"], "summary": "Get current user", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "401": {"$ref": "#/responses/Error"}}}},
        "/api/v1/public/home": {"get": {"tags": ["home"], "summary": "Landing page content", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/public/reviews": {"get": {"tags": ["reviews"], "summary": "List published reviews", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/public/reviews/{slug}": {"get": {"tags": ["reviews"], "summary": "Get a published review", "responses": {"200": {"description": "OK"}, "404": {"$ref": "#/responses/Error"}}}},
        "/api/v1/public/reviews/{slug}/comments": {
            "get": {"tags": ["comments"], "summary": "List approved comments of a review", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["comments"], "summary": "Submit a comment", "responses": {"201": {"description": "Created"}, "400": {"$ref": "#/responses/Error"}, "429": {"$ref": "#/responses/Error"}}}
        },
        "/api/v1/public/categories": {"get": {"tags": ["categories"], "summary": "List categories", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/public/about": {"get": {"tags": ["pages"], "summary": "Get the about page", "responses": {"200": {"description": "OK"}, "404": {"$ref": "#/responses/Error"}}}},
        "/api/v1/public/zeedits": {"get": {"tags": ["pages"], "summary": "Get the zeedits page and its services", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/public/settings": {"get": {"tags": ["settings"], "summary": "Get site settings", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/admin/stats": {"get": {"tags": ["admin"], "summary": "Dashboard counters", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/api/v1/admin/reviews": {
            "get": {"tags": ["admin"], "summary": "List all reviews", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["admin"], "summary": "Create a review", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}, "409": {"$ref": "#/responses/Error"}}}
        },
        "/api/v1/admin/reviews/{id}": {
            "get": {"tags": ["admin"], "summary": "Get any review", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}},
            "put": {"tags": ["admin"], "summary": "Update a review", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["admin"], "summary": "Delete a review", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/admin/reviews/{id}/publish": {"put": {"tags": ["admin"], "summary": "Publish or unpublish a review", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/api/v1/admin/categories": {"post": {"tags": ["admin"], "summary": "Create a category", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}}}},
        "/api/v1/admin/categories/{id}": {
            "put": {"tags": ["admin"], "summary": "Update a category", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["admin"], "summary": "Delete a category", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/admin/comments": {"get": {"tags": ["admin"], "summary": "List all comments", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/api/v1/admin/comments/{id}/approval": {"put": {"tags": ["admin"], "summary": "Approve or hide a comment", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/api/v1/admin/comments/{id}": {"delete": {"tags": ["admin"], "summary": "Delete a comment", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/api/v1/admin/about": {"put": {"tags": ["admin"], "summary": "Update the about page", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/api/v1/admin/zeedits": {"put": {"tags": ["admin"], "summary": "Update the zeedits page", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/api/v1/admin/services": {
            "get": {"tags": ["admin"], "summary": "List services", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["admin"], "summary": "Add a service", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}}}
        },
        "/api/v1/admin/services/{id}": {
            "put": {"tags": ["admin"], "summary": "Update a service", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["admin"], "summary": "Delete a service", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/admin/services/{id}/move": {"post": {"tags": ["admin"], "summary": "Move a service up or down", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/api/v1/admin/settings": {"put": {"tags": ["admin"], "summary": "Update site settings", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"$ref": "#/responses/Error"}}}}
    },
    "definitions": {
        "errors.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "message": {"type": "string"},
                "details": {"type": "string"}
            }
        }
    },
    "responses": {
        "Error": {"description": "Error", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "JWT token for authenticated requests. Format: Bearer {token}",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "",
	Schemes:          []string{},
	Title:            "Bookshelf API",
	Description:      "Book review site: published reviews, moderated comments, and the admin dashboard behind them",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
