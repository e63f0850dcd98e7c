// Package docs registers the Swagger 2.0 document served under /swagger/.
// Regenerate with `swag init -g cmd/api/main.go` after changing handler annotations.
package docs

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
        "/events": {
            "get": {
                "tags": ["events"],
                "summary": "List events",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "query", "in": "query"},
                    {"type": "string", "name": "category", "in": "query"},
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.EventPageSuccessResponse"}},
                    "500": {"description": "error.code: internal_error", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["events"],
                "summary": "Create an event",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "event", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.EventRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/controllers.EventSuccessResponse"}},
                    "400": {"description": "error.code: bad_request", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "401": {"description": "error.code: unauthorized", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "403": {"description": "error.code: forbidden (caller not registered)", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "404": {"description": "error.code: not_found (organizer)", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/events/{eventID}": {
            "get": {
                "tags": ["events"],
                "summary": "Get an event by ID",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "eventID", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.EventDetailsSuccessResponse"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["events"],
                "summary": "Replace an event",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "eventID", "in": "path", "required": true},
                    {"name": "event", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.EventRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.EventSuccessResponse"}},
                    "400": {"description": "error.code: bad_request", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "403": {"description": "error.code: forbidden (caller not registered)", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["events"],
                "summary": "Delete an event",
                "parameters": [
                    {"type": "string", "name": "eventID", "in": "path", "required": true},
                    {"type": "string", "name": "path", "in": "query"}
                ],
                "responses": {"204": {"description": "No Content"}, "403": {"description": "error.code: forbidden (caller not registered)", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}}
            }
        },
        "/users/{userID}/events": {
            "get": {
                "tags": ["events"],
                "summary": "List an organizer's events",
                "parameters": [
                    {"type": "string", "name": "userID", "in": "path", "required": true},
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "limit", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.EventPageSuccessResponse"}}}
            }
        },
        "/categories": {
            "get": {
                "tags": ["categories"],
                "summary": "List categories",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.CategoryListSuccessResponse"}}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["categories"],
                "summary": "Create a category",
                "parameters": [
                    {"name": "category", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.CreateCategoryRequest"}}
                ],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/controllers.CategorySuccessResponse"}}, "403": {"description": "error.code: forbidden (caller not registered)", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}}
            }
        },
        "/categories/{categoryID}/events": {
            "get": {
                "tags": ["events"],
                "summary": "List related events of a category",
                "parameters": [
                    {"type": "string", "name": "categoryID", "in": "path", "required": true},
                    {"type": "string", "name": "exclude", "in": "query"},
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "limit", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.EventPageSuccessResponse"}}}
            }
        },
        "/users": {
            "post": {
                "tags": ["users"],
                "summary": "Sync a user from the auth provider",
                "parameters": [
                    {"type": "string", "name": "X-Webhook-Secret", "in": "header", "required": true},
                    {"name": "user", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.SyncUserRequest"}}
                ],
                "responses": {
                    "200": {"description": "user already synced", "schema": {"$ref": "#/definitions/controllers.UserSuccessResponse"}},
                    "201": {"description": "user created", "schema": {"$ref": "#/definitions/controllers.UserSuccessResponse"}}
                }
            }
        },
        "/users/{userID}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["users"],
                "summary": "Get a user by ID",
                "parameters": [{"type": "string", "name": "userID", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.UserSuccessResponse"}}}
            }
        }
    },
    "definitions": {
        "helpers.APIError": {
            "type": "object",
            "properties": {"code": {"type": "string"}, "message": {"type": "string"}}
        },
        "helpers.APIResponse": {
            "type": "object",
            "properties": {"data": {}, "error": {"$ref": "#/definitions/helpers.APIError"}}
        },
        "domain.Category": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "name": {"type": "string"}, "created_at": {"type": "string"}}
        },
        "domain.User": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}, "external_auth_id": {"type": "string"}, "email": {"type": "string"},
                "username": {"type": "string"}, "first_name": {"type": "string"}, "last_name": {"type": "string"},
                "photo_url": {"type": "string"}, "created_at": {"type": "string"}
            }
        },
        "domain.Event": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}, "title": {"type": "string"}, "description": {"type": "string"},
                "location": {"type": "string"}, "created_at": {"type": "string"}, "image_url": {"type": "string"},
                "start_date_time": {"type": "string"}, "end_date_time": {"type": "string"}, "price": {"type": "string"},
                "is_free": {"type": "boolean"}, "url": {"type": "string"}, "category_id": {"type": "string"},
                "organizer_id": {"type": "string"}
            }
        },
        "domain.EventDetails": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}, "title": {"type": "string"}, "description": {"type": "string"},
                "location": {"type": "string"}, "created_at": {"type": "string"}, "image_url": {"type": "string"},
                "start_date_time": {"type": "string"}, "end_date_time": {"type": "string"}, "price": {"type": "string"},
                "is_free": {"type": "boolean"}, "url": {"type": "string"},
                "category": {"type": "object", "properties": {"id": {"type": "string"}, "name": {"type": "string"}}},
                "organizer": {"type": "object", "properties": {"id": {"type": "string"}, "first_name": {"type": "string"}, "last_name": {"type": "string"}}}
            }
        },
        "domain.EventPage": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/domain.EventDetails"}},
                "page": {"type": "integer"}, "limit": {"type": "integer"},
                "total": {"type": "integer"}, "total_pages": {"type": "integer"}
            }
        },
        "controllers.EventRequest": {
            "type": "object",
            "required": ["title", "description", "image_url", "start_date_time", "end_date_time"],
            "properties": {
                "title": {"type": "string", "minLength": 3}, "description": {"type": "string", "minLength": 3, "maxLength": 400},
                "location": {"type": "string", "maxLength": 400}, "image_url": {"type": "string"},
                "start_date_time": {"type": "string"}, "end_date_time": {"type": "string"},
                "price": {"type": "string"}, "is_free": {"type": "boolean"}, "url": {"type": "string"},
                "category_id": {"type": "string"}, "path": {"type": "string"}
            }
        },
        "controllers.CreateCategoryRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {"name": {"type": "string", "maxLength": 100}}
        },
        "controllers.SyncUserRequest": {
            "type": "object",
            "required": ["external_auth_id", "email", "username"],
            "properties": {
                "external_auth_id": {"type": "string"}, "email": {"type": "string"}, "username": {"type": "string"},
                "first_name": {"type": "string"}, "last_name": {"type": "string"}, "photo_url": {"type": "string"}
            }
        },
        "controllers.EventSuccessResponse": {
            "type": "object",
            "properties": {"data": {"$ref": "#/definitions/domain.Event"}, "error": {"$ref": "#/definitions/helpers.APIError"}}
        },
        "controllers.EventDetailsSuccessResponse": {
            "type": "object",
            "properties": {"data": {"$ref": "#/definitions/domain.EventDetails"}, "error": {"$ref": "#/definitions/helpers.APIError"}}
        },
        "controllers.EventPageSuccessResponse": {
            "type": "object",
            "properties": {"data": {"$ref": "#/definitions/domain.EventPage"}, "error": {"$ref": "#/definitions/helpers.APIError"}}
        },
        "controllers.CategorySuccessResponse": {
            "type": "object",
            "properties": {"data": {"$ref": "#/definitions/domain.Category"}, "error": {"$ref": "#/definitions/helpers.APIError"}}
        },
        "controllers.CategoryListSuccessResponse": {
            "type": "object",
            "properties": {"data": {"type": "array", "items": {"$ref": "#/definitions/domain.Category"}}, "error": {"$ref": "#/definitions/helpers.APIError"}}
        },
        "controllers.UserSuccessResponse": {
            "type": "object",
            "properties": {"data": {"$ref": "#/definitions/domain.User"}, "error": {"$ref": "#/definitions/helpers.APIError"}}
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
	Title:            "Eventboard API",
	Description:      "Event listings with organizers, categories and page revalidation.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
