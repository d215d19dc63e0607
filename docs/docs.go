// Package docs registers the OpenAPI document served under /swagger.
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
    "paths": {
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Health check",
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/auth/sign-up": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Sign up",
                "parameters": [{"description": "Credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.authCredentials"}}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/auth/sign-in": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Sign in",
                "parameters": [{"description": "Credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.authCredentials"}}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/api/v1/form": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["form"],
                "summary": "Get form",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Form"}}, "401": {"description": "Unauthorized"}, "500": {"description": "Internal Server Error"}}
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["form"],
                "summary": "Replace form",
                "parameters": [{"description": "Form values", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.InputsRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Form"}}, "400": {"description": "Bad Request"}, "401": {"description": "Unauthorized"}, "500": {"description": "Internal Server Error"}}
            }
        },
        "/api/v1/form/sleep/step": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["form"],
                "summary": "Step desired sleep",
                "parameters": [{"description": "Steps", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.StepRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Form"}}, "400": {"description": "Bad Request"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/api/v1/form/coffee/step": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["form"],
                "summary": "Step coffee intake",
                "parameters": [{"description": "Steps", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.StepRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Form"}}, "400": {"description": "Bad Request"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/api/v1/bedtime/calculate": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "A failed estimate is still 200: the alert then carries the generic error message.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["bedtime"],
                "summary": "Calculate bedtime",
                "parameters": [
                    {"type": "string", "example": "en-GB", "description": "BCP 47 tag deciding 12h/24h output", "name": "locale", "in": "query"},
                    {"description": "Inputs overriding the stored form", "name": "body", "in": "body", "schema": {"$ref": "#/definitions/handlers.InputsRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/service.Calculation"}}, "400": {"description": "Bad Request"}, "401": {"description": "Unauthorized"}, "500": {"description": "Internal Server Error"}}
            }
        },
        "/api/v1/bedtime/history": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["bedtime"],
                "summary": "List past calculations",
                "parameters": [
                    {"type": "string", "example": "2025-08-01", "name": "from", "in": "query"},
                    {"type": "string", "example": "2025-08-31", "name": "to", "in": "query"},
                    {"enum": ["success", "failure"], "type": "string", "name": "outcome", "in": "query"}
                ],
                "responses": {"200": {"description": "count, estimates"}, "400": {"description": "Bad Request"}, "401": {"description": "Unauthorized"}, "500": {"description": "Internal Server Error"}}
            }
        }
    },
    "definitions": {
        "handlers.authCredentials": {
            "type": "object",
            "required": ["password", "username"],
            "properties": {"password": {"type": "string"}, "username": {"type": "string"}}
        },
        "handlers.InputsRequest": {
            "type": "object",
            "required": ["sleep_hours", "wake_time"],
            "properties": {
                "coffee_cups": {"type": "integer", "maximum": 10, "minimum": 0, "example": 1},
                "sleep_hours": {"type": "number", "maximum": 12, "minimum": 4, "example": 8},
                "wake_time": {"type": "string", "example": "07:00"}
            }
        },
        "handlers.StepRequest": {
            "type": "object",
            "required": ["steps"],
            "properties": {"steps": {"type": "integer", "maximum": 100, "minimum": -100, "example": 1}}
        },
        "models.Form": {
            "type": "object",
            "properties": {
                "coffee_cups": {"type": "integer"},
                "sleep_hours": {"type": "number"},
                "updated_at": {"type": "string"},
                "wake_time": {"type": "string"}
            }
        },
        "models.Alert": {
            "type": "object",
            "properties": {"message": {"type": "string"}, "title": {"type": "string"}}
        },
        "models.Prediction": {
            "type": "object",
            "properties": {
                "actual_sleep_seconds": {"type": "number"},
                "bedtime": {"type": "string"},
                "formatted": {"type": "string"}
            }
        },
        "service.Calculation": {
            "type": "object",
            "properties": {
                "alert": {"$ref": "#/definitions/models.Alert"},
                "inputs": {"$ref": "#/definitions/handlers.InputsRequest"},
                "prediction": {"$ref": "#/definitions/models.Prediction"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "BetterRest API",
	Description:      "Estimates the ideal bedtime from wake time, desired sleep and coffee intake.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
