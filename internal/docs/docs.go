// Package docs provides the swagger specification served at /swagger.
// Code generated by swag init; edits should go through handler annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "termsOfService": "http://swagger.io/terms/",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/auth/register": {
            "post": {
                "tags": ["auth"],
                "summary": "Register a new user",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "409": {"description": "Conflict"}}
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Login user",
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/profile": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["user"],
                "summary": "Get user profile",
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/transactions": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["transactions"],
                "summary": "List transactions",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["transactions"],
                "summary": "Create a transaction",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            }
        },
        "/transactions/quick-add": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["transactions"],
                "summary": "Quick add a transaction from free text",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            }
        },
        "/transactions/export": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["transactions"],
                "summary": "Export transactions as CSV",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/transactions/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["transactions"],
                "summary": "Get transaction by ID",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["transactions"],
                "summary": "Update transaction",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["transactions"],
                "summary": "Delete transaction",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/dashboard/summary": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["dashboard"],
                "summary": "Get dashboard summary",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/dashboard/categories": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["dashboard"],
                "summary": "Get category breakdown",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/categorize": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["categorize"],
                "summary": "Categorize expense text",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/categorize/amount": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["categorize"],
                "summary": "Extract amount from text",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/chat": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["chat"],
                "summary": "Ask the financial assistant",
                "responses": {"200": {"description": "OK"}, "500": {"description": "Assistant unavailable"}}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Spendlyo API",
	Description:      "Spendlyo is a personal expense tracker: record income and expense transactions (manually or via free-text quick add), view aggregated dashboards, and chat with an AI assistant about your finances.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
