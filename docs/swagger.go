// Package docs holds the swagger spec served at /swagger.
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
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header",
            "description": "Type \"Bearer\" followed by a space and JWT token."
        }
    },
    "paths": {
        "/users/register": {
            "post": {
                "tags": ["Users"],
                "summary": "Register a new user",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            }
        },
        "/users/login": {
            "post": {
                "tags": ["Users"],
                "summary": "Authenticate and get a token",
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/users/search": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Users"],
                "summary": "Search users by name substring",
                "parameters": [{"name": "query", "in": "query", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/board/create": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["Boards"],
                "summary": "Create a board",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/board/list": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Boards"],
                "summary": "List boards owned by the requester",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/board/update/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["Boards"],
                "summary": "Update an owned board",
                "parameters": [{"name": "id", "in": "path", "type": "string", "required": true}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            }
        },
        "/board/delete/{id}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["Boards"],
                "summary": "Delete an owned board",
                "parameters": [{"name": "id", "in": "path", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/boardList/create": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["BoardLists"],
                "summary": "Create a list in an owned board",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            }
        },
        "/boardList/list/{boardId}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["BoardLists"],
                "summary": "Get an owned board with its lists",
                "parameters": [{"name": "boardId", "in": "path", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/boardList/update/{listId}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["BoardLists"],
                "summary": "Update a list",
                "parameters": [{"name": "listId", "in": "path", "type": "string", "required": true}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            }
        },
        "/boardList/delete/{listId}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["BoardLists"],
                "summary": "Delete a list",
                "parameters": [{"name": "listId", "in": "path", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/cards/create": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["Cards"],
                "summary": "Create a card in a list of an owned board",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            }
        },
        "/cards/byList/{listId}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Cards"],
                "summary": "Get cards of a list",
                "parameters": [{"name": "listId", "in": "path", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/cards/byBoard/{boardId}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Cards"],
                "summary": "Get cards of a board with a count",
                "parameters": [{"name": "boardId", "in": "path", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/cards/update/{cardId}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["Cards"],
                "summary": "Rename a card or move it to another list",
                "parameters": [{"name": "cardId", "in": "path", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{"http"},
	Title:            "Task Board API",
	Description:      "API for managing boards, lists and cards.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
