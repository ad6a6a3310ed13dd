package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "SKPI Portal API",
        "description": "Role-simulated SKPI dashboard views for mahasiswa, prodi and operator.",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Dashboard", "description": "Role and menu selection resolved into dashboard panels"},
        {"name": "System", "description": "Process counters"}
    ],
    "paths": {
        "/roles": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "List simulated roles",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/roles/{role}/menu": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Ordered sidebar menu of a role",
                "parameters": [
                    {"name": "role", "in": "path", "required": true, "type": "string", "enum": ["student", "department", "operator", "mahasiswa", "prodi"]}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Unknown role", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/view": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Resolve the dashboard view for a selection",
                "description": "An unmapped menu resolves to the role's default panel and sets meta.fallback.",
                "parameters": [
                    {"name": "role", "in": "query", "type": "string", "description": "Defaults to student"},
                    {"name": "menu", "in": "query", "type": "string", "description": "Defaults to the role's first menu entry"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Unknown role", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/view/export": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Download the resolved table panel",
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"name": "role", "in": "query", "type": "string"},
                    {"name": "menu", "in": "query", "type": "string"},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "File", "schema": {"type": "file"}},
                    "400": {"description": "Unknown role or format", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Exports disabled", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "422": {"description": "Panel is not a table", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/system/metrics": {
            "get": {
                "tags": ["System"],
                "summary": "Process counters",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {
                    "type": "object",
                    "properties": {
                        "cache_hit": {"type": "boolean"},
                        "fallback": {"type": "boolean"},
                        "processing_time_ms": {"type": "integer"}
                    }
                }
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
