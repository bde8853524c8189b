// Package docs registers the OpenAPI description served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "paths": {
        "/v1/access/initialized": {"get": {"tags": ["access"], "summary": "Report whether the bootstrap admin has been claimed", "responses": {"200": {"description": "OK"}}}},
        "/v1/access/initialize": {"post": {"tags": ["access"], "summary": "Claim the bootstrap admin slot", "security": [{"BearerAuth": []}], "responses": {"204": {"description": "No Content"}, "401": {"description": "Unauthorized"}, "409": {"description": "Conflict"}}}},
        "/v1/access/admin": {"get": {"tags": ["access"], "summary": "Report whether the caller is an admin", "responses": {"200": {"description": "OK"}}}},
        "/v1/access/role": {"get": {"tags": ["access"], "summary": "Get the caller's effective role", "responses": {"200": {"description": "OK"}}}},
        "/v1/access/roles/{identity}": {"put": {"tags": ["access"], "summary": "Assign a role to an identity", "security": [{"BearerAuth": []}], "parameters": [{"type": "string", "name": "identity", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}, "400": {"description": "Bad Request"}, "403": {"description": "Forbidden"}, "409": {"description": "Conflict"}}}},
        "/v1/profile": {
            "get": {"tags": ["profiles"], "summary": "Get the caller's profile", "responses": {"200": {"description": "OK"}, "204": {"description": "No Content"}}},
            "put": {"tags": ["profiles"], "summary": "Create or replace the caller's profile", "security": [{"BearerAuth": []}], "responses": {"204": {"description": "No Content"}, "401": {"description": "Unauthorized"}, "422": {"description": "Unprocessable Entity"}}}
        },
        "/v1/profiles/{identity}": {"get": {"tags": ["profiles"], "summary": "Get a profile by identity", "parameters": [{"type": "string", "name": "identity", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "204": {"description": "No Content"}}}},
        "/v1/contact-submissions": {
            "get": {"tags": ["leads"], "summary": "List contact form submissions", "security": [{"BearerAuth": []}], "parameters": [{"type": "string", "name": "jurisdiction", "in": "query"}, {"type": "string", "name": "status", "in": "query"}], "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}},
            "post": {"tags": ["leads"], "summary": "Submit the contact form", "responses": {"201": {"description": "Created"}, "422": {"description": "Unprocessable Entity"}, "429": {"description": "Too Many Requests"}}}
        },
        "/v1/contact-submissions/{id}/status": {"patch": {"tags": ["leads"], "summary": "Update the follow-up status of a submission", "security": [{"BearerAuth": []}], "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}}}},
        "/v1/blog-articles": {
            "get": {"tags": ["blog"], "summary": "List blog articles", "parameters": [{"type": "string", "name": "category", "in": "query"}], "responses": {"200": {"description": "OK"}}},
            "put": {"tags": ["blog"], "summary": "Create or replace a blog article", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}}
        },
        "/v1/blog-articles/{id}": {"get": {"tags": ["blog"], "summary": "Get a blog article", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/v1/services": {"get": {"tags": ["services"], "summary": "List the firm's services", "parameters": [{"type": "string", "name": "jurisdiction", "in": "query"}, {"type": "string", "name": "practice_area", "in": "query"}], "responses": {"200": {"description": "OK"}}}},
        "/v1/trending-topics": {
            "get": {"tags": ["trending"], "summary": "List trending topics", "parameters": [{"type": "string", "name": "practice_area", "in": "query"}, {"type": "string", "name": "relevance", "in": "query"}, {"type": "boolean", "name": "posted", "in": "query"}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["trending"], "summary": "Create a trending topic", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}, "403": {"description": "Forbidden"}}}
        },
        "/v1/trending-topics/{id}/posted": {"post": {"tags": ["trending"], "summary": "Mark a trending topic as posted", "security": [{"BearerAuth": []}], "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}}}},
        "/v1/legal-listings": {
            "get": {"tags": ["directory"], "summary": "Search the legal directory", "parameters": [{"type": "string", "name": "jurisdiction", "in": "query"}, {"type": "string", "name": "practice_area", "in": "query"}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["directory"], "summary": "Add a legal directory entry", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}, "403": {"description": "Forbidden"}}}
        },
        "/v1/sitemap": {"get": {"tags": ["sitemap"], "summary": "List sitemap entries", "responses": {"200": {"description": "OK"}}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "The Jurists site API",
	Description:      "Backend for the firm website: access control, leads and site content.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
