// Package api holds the OpenAPI description served at /docs.
package api

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {"tags": ["General"], "summary": "API root", "responses": {"200": {"description": "OK"}}},
            "options": {"tags": ["General"], "summary": "Allowed HTTP verbs", "responses": {"204": {"description": "No Content"}}}
        },
        "/healthz": {
            "get": {"tags": ["General"], "summary": "Get health", "responses": {"204": {"description": "No Content"}, "500": {"description": "Internal Server Error"}}},
            "options": {"tags": ["General"], "summary": "Allowed HTTP verbs", "responses": {"204": {"description": "No Content"}}}
        },
        "/version": {
            "get": {"tags": ["General"], "summary": "API version", "responses": {"200": {"description": "OK"}}},
            "options": {"tags": ["General"], "summary": "Allowed HTTP verbs", "responses": {"204": {"description": "No Content"}}}
        },
        "/v1": {
            "get": {"tags": ["v1"], "summary": "v1 API", "responses": {"200": {"description": "OK"}}},
            "options": {"tags": ["v1"], "summary": "Allowed HTTP verbs", "responses": {"204": {"description": "No Content"}}}
        },
        "/v1/preferences/{key}": {
            "get": {"tags": ["Preferences"], "summary": "Get preference", "parameters": [{"name": "key", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}},
            "put": {"tags": ["Preferences"], "summary": "Set preference", "parameters": [{"name": "key", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}},
            "options": {"tags": ["Preferences"], "summary": "Allowed HTTP verbs", "parameters": [{"name": "key", "in": "path", "required": true, "type": "string"}], "responses": {"204": {"description": "No Content"}}}
        },
        "/v1/locale": {
            "get": {"tags": ["Locale"], "summary": "Get locale", "responses": {"200": {"description": "OK"}}},
            "options": {"tags": ["Locale"], "summary": "Allowed HTTP verbs", "responses": {"204": {"description": "No Content"}}}
        },
        "/v1/session": {
            "get": {"tags": ["Session"], "summary": "Get session", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Session"], "summary": "Sign in", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}},
            "options": {"tags": ["Session"], "summary": "Allowed HTTP verbs", "responses": {"204": {"description": "No Content"}}}
        },
        "/v1/books": {
            "get": {"tags": ["Books"], "summary": "Get books", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}},
            "post": {"tags": ["Books"], "summary": "Create book", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}},
            "options": {"tags": ["Books"], "summary": "Allowed HTTP verbs", "responses": {"204": {"description": "No Content"}}}
        },
        "/v1/books/default": {
            "get": {"tags": ["Books"], "summary": "Get default book", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "options": {"tags": ["Books"], "summary": "Allowed HTTP verbs", "responses": {"204": {"description": "No Content"}}}
        },
        "/v1/categories": {
            "get": {"tags": ["Categories"], "summary": "Get categories", "parameters": [{"name": "book", "in": "query", "type": "string"}, {"name": "type", "in": "query", "type": "string"}, {"name": "name", "in": "query", "type": "string"}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}},
            "post": {"tags": ["Categories"], "summary": "Create category", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}},
            "options": {"tags": ["Categories"], "summary": "Allowed HTTP verbs", "responses": {"204": {"description": "No Content"}}}
        },
        "/v1/transactions": {
            "get": {"tags": ["Transactions"], "summary": "Get transactions", "parameters": [{"name": "book", "in": "query", "type": "string"}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}},
            "post": {"tags": ["Transactions"], "summary": "Create transaction", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}},
            "options": {"tags": ["Transactions"], "summary": "Allowed HTTP verbs", "responses": {"204": {"description": "No Content"}}}
        },
        "/v1/entries": {
            "post": {"tags": ["Entries"], "summary": "Create entry form", "responses": {"201": {"description": "Created"}}},
            "options": {"tags": ["Entries"], "summary": "Allowed HTTP verbs", "responses": {"204": {"description": "No Content"}}}
        },
        "/v1/entries/{id}": {
            "get": {"tags": ["Entries"], "summary": "Get entry form", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}},
            "patch": {"tags": ["Entries"], "summary": "Update entry form", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}},
            "delete": {"tags": ["Entries"], "summary": "Delete entry form", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found"}}},
            "options": {"tags": ["Entries"], "summary": "Allowed HTTP verbs", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"204": {"description": "No Content"}}}
        },
        "/v1/entries/{id}/submit": {
            "post": {"tags": ["Entries"], "summary": "Submit entry form", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}},
            "options": {"tags": ["Entries"], "summary": "Allowed HTTP verbs", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"204": {"description": "No Content"}}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "",
	Host:             "",
	BasePath:         "",
	Schemes:          []string{},
	Title:            "",
	Description:      "",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
