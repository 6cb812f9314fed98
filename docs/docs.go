package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "description": "ActivityHub API Documentation",
        "title": "ActivityHub API",
        "version": "1.0"
    },
    "host": "localhost:8080",
    "basePath": "/",
    "schemes": ["http"],
    "paths": {
        "/health": {
            "get": {
                "tags": ["Health"],
                "summary": "Health Check",
                "description": "Check if server is running",
                "responses": {
                    "200": {
                        "description": "Server is healthy"
                    }
                }
            }
        },
        "/api/activities": {
            "get": {
                "tags": ["Activities"],
                "summary": "List activities",
                "produces": ["application/json"],
                "responses": {
                    "200": {
                        "description": "All activities",
                        "schema": {
                            "type": "array",
                            "items": {"$ref": "#/definitions/Activity"}
                        }
                    }
                }
            },
            "post": {
                "tags": ["Activities"],
                "summary": "Create an activity",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {
                        "in": "body",
                        "name": "activity",
                        "description": "Activity to create; id is generated when omitted",
                        "required": true,
                        "schema": {"$ref": "#/definitions/Activity"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Identifier of the created activity",
                        "schema": {"type": "string"}
                    },
                    "400": {
                        "description": "Missing or invalid body"
                    }
                }
            },
            "put": {
                "tags": ["Activities"],
                "summary": "Replace an activity",
                "description": "Whole-record replace matched by the id carried in the body",
                "consumes": ["application/json"],
                "parameters": [
                    {
                        "in": "body",
                        "name": "activity",
                        "description": "Replacement record, id required",
                        "required": true,
                        "schema": {"$ref": "#/definitions/Activity"}
                    }
                ],
                "responses": {
                    "204": {
                        "description": "Activity replaced"
                    },
                    "400": {
                        "description": "Missing or invalid body"
                    },
                    "404": {
                        "description": "No activity with that id"
                    }
                }
            }
        },
        "/api/activities/{id}": {
            "get": {
                "tags": ["Activities"],
                "summary": "Get an activity by id",
                "produces": ["application/json"],
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "type": "string",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "The activity",
                        "schema": {"$ref": "#/definitions/Activity"}
                    },
                    "400": {
                        "description": "Empty id"
                    },
                    "404": {
                        "description": "No activity with that id"
                    }
                }
            },
            "delete": {
                "tags": ["Activities"],
                "summary": "Delete an activity",
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "type": "string",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Activity deleted"
                    },
                    "400": {
                        "description": "Empty id"
                    },
                    "404": {
                        "description": "No activity with that id"
                    }
                }
            }
        }
    },
    "definitions": {
        "Activity": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "date": {"type": "string", "format": "date-time"},
                "description": {"type": "string"},
                "category": {"type": "string"},
                "city": {"type": "string"},
                "venue": {"type": "string"},
                "latitude": {"type": "number"},
                "longitude": {"type": "number"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "ActivityHub API",
	Description:      "ActivityHub API Documentation",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
