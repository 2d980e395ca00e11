// Package docs registers the OpenAPI description served under /swagger.
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
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "security": [{"BearerAuth": []}],
    "paths": {
        "/dashboard": {"get": {"tags": ["Dashboard"], "summary": "Get dashboard", "responses": {"200": {"description": "OK"}, "500": {"description": "Failed to fetch dashboard data"}}}},
        "/meetings": {
            "get": {"tags": ["Meetings"], "summary": "List meetings", "parameters": [
                {"type": "integer", "name": "page", "in": "query"},
                {"type": "integer", "name": "limit", "in": "query"}
            ], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Meetings"], "summary": "Create meeting", "responses": {"201": {"description": "Created"}, "400": {"description": "Invalid payload"}}}
        },
        "/meetings/stats": {"get": {"tags": ["Meetings"], "summary": "Meeting statistics", "responses": {"200": {"description": "OK"}}}},
        "/meetings/{id}": {"get": {"tags": ["Meetings"], "summary": "Get meeting", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Meeting not found"}}}},
        "/meetings/{id}/transcript": {"put": {"tags": ["Meetings"], "summary": "Attach transcript", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Meeting not found"}}}},
        "/meetings/{id}/transcribe": {"post": {"tags": ["Meetings"], "summary": "Transcribe meeting audio", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "503": {"description": "Transcription not configured"}}}},
        "/meetings/{id}/summarize": {"post": {"tags": ["Meetings"], "summary": "Summarize meeting", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Meeting not found or has no transcript"}, "500": {"description": "Failed to generate meeting summary"}}}},
        "/tasks": {
            "get": {"tags": ["Tasks"], "summary": "List tasks", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Tasks"], "summary": "Create task", "responses": {"201": {"description": "Created"}, "404": {"description": "Meeting not found"}}}
        },
        "/tasks/stats": {"get": {"tags": ["Tasks"], "summary": "Task statistics", "responses": {"200": {"description": "OK"}}}},
        "/tasks/{id}": {"get": {"tags": ["Tasks"], "summary": "Get task", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Task not found"}}}},
        "/tasks/{id}/status": {"patch": {"tags": ["Tasks"], "summary": "Update task status", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "400": {"description": "Invalid status"}, "404": {"description": "Task not found"}}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "Meeting Tracker API",
	Description:      "Meetings, transcripts, AI summaries, tasks and the per-user dashboard.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
