// Package swagger registers the OpenAPI document served at /swagger/.
// Maintained by hand; keep it in sync with the handler annotations.
package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/ping": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Connectivity check",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/upload.PingBody"}
                    }
                }
            }
        },
        "/status": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/upload.StatusBody"}
                    }
                }
            }
        },
        "/upload": {
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["upload"],
                "summary": "Upload a file to a cloud storage service",
                "parameters": [
                    {
                        "type": "string",
                        "name": "X-Auth-Token",
                        "in": "header",
                        "required": true,
                        "description": "Authentication token"
                    },
                    {
                        "type": "string",
                        "default": "mega",
                        "name": "service",
                        "in": "query",
                        "description": "Cloud storage service"
                    },
                    {
                        "type": "file",
                        "name": "file",
                        "in": "formData",
                        "required": true,
                        "description": "File to upload"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/upload.SuccessBody"}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/response.ErrorDetail"}
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {"$ref": "#/definitions/response.ErrorDetail"}
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {"$ref": "#/definitions/response.ErrorDetail"}
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {"$ref": "#/definitions/response.ErrorDetail"}
                    }
                }
            }
        }
    },
    "definitions": {
        "response.ErrorDetail": {
            "type": "object",
            "properties": {
                "detail": {"type": "string"}
            }
        },
        "upload.PingBody": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        },
        "upload.StatusBody": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "version": {"type": "string"},
                "service": {"type": "string"},
                "temp_dir": {"type": "string"},
                "supported_services": {
                    "type": "array",
                    "items": {"type": "string"}
                }
            }
        },
        "upload.SuccessBody": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "message": {"type": "string"},
                "filename": {"type": "string"},
                "service": {"type": "string"},
                "link": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Paimon Cloud Storage API",
	Description:      "Gateway for uploading files to cloud storage providers.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
