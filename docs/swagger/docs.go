// Package swagger holds the generated OpenAPI registration for the
// verification server. Regenerate with swag init when handler annotations
// change.
package swagger

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
        "/verify/products/create": {
            "post": {
                "produces": ["application/json"],
                "tags": ["product"],
                "summary": "Verify Product Create",
                "responses": {
                    "200": {
                        "description": "Run Report",
                        "schema": {"$ref": "#/definitions/reportstore.RunReport"}
                    }
                }
            }
        },
        "/verify/products/read": {
            "post": {
                "produces": ["application/json"],
                "tags": ["product"],
                "summary": "Verify Product Read",
                "responses": {
                    "200": {
                        "description": "Run Report",
                        "schema": {"$ref": "#/definitions/reportstore.RunReport"}
                    }
                }
            }
        },
        "/verify/products/update": {
            "post": {
                "produces": ["application/json"],
                "tags": ["product"],
                "summary": "Verify Product Update",
                "responses": {
                    "200": {
                        "description": "Run Report",
                        "schema": {"$ref": "#/definitions/reportstore.RunReport"}
                    }
                }
            }
        },
        "/verify/products/delete": {
            "post": {
                "produces": ["application/json"],
                "tags": ["product"],
                "summary": "Verify Product Delete",
                "responses": {
                    "200": {
                        "description": "Run Report",
                        "schema": {"$ref": "#/definitions/reportstore.RunReport"}
                    }
                }
            }
        },
        "/verify/products/list": {
            "post": {
                "produces": ["application/json"],
                "tags": ["product"],
                "summary": "Verify Product List",
                "responses": {
                    "200": {
                        "description": "Run Report",
                        "schema": {"$ref": "#/definitions/reportstore.RunReport"}
                    }
                }
            }
        },
        "/verify/orders/create": {
            "post": {
                "produces": ["application/json"],
                "tags": ["order"],
                "summary": "Verify Order Create",
                "responses": {
                    "200": {
                        "description": "Run Report",
                        "schema": {"$ref": "#/definitions/reportstore.RunReport"}
                    }
                }
            }
        },
        "/verify/orders/read": {
            "post": {
                "produces": ["application/json"],
                "tags": ["order"],
                "summary": "Verify Order Read",
                "responses": {
                    "200": {
                        "description": "Run Report",
                        "schema": {"$ref": "#/definitions/reportstore.RunReport"}
                    }
                }
            }
        },
        "/verify/orders/update": {
            "post": {
                "produces": ["application/json"],
                "tags": ["order"],
                "summary": "Verify Order Update",
                "responses": {
                    "200": {
                        "description": "Run Report",
                        "schema": {"$ref": "#/definitions/reportstore.RunReport"}
                    }
                }
            }
        },
        "/reports": {
            "get": {
                "produces": ["application/json"],
                "tags": ["reports"],
                "summary": "List Run Reports",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Scenario filter (e.g. 'product/create')",
                        "name": "scenario",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Object Names",
                        "schema": {"type": "array", "items": {"type": "string"}}
                    }
                }
            }
        },
        "/reports/{name}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["reports"],
                "summary": "Get Run Report",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Object Name",
                        "name": "name",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Run Report",
                        "schema": {"$ref": "#/definitions/reportstore.RunReport"}
                    }
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["reports"],
                "summary": "Delete Run Report",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Object Name",
                        "name": "name",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Deleted",
                        "schema": {"type": "object"}
                    }
                }
            }
        }
    },
    "definitions": {
        "reportstore.RunReport": {
            "type": "object",
            "properties": {
                "scenario": {"type": "string"},
                "entity_id": {"type": "string"},
                "passed": {"type": "boolean"},
                "mismatches": {
                    "type": "array",
                    "items": {"type": "string"}
                },
                "error": {"type": "string"},
                "generated_at": {"type": "string"},
                "execution_time": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Commerce Verifier API",
	Description:      "Conformance verification for the commerce API and its database.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
