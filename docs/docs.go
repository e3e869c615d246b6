// Package docs registers the OpenAPI description served at
// /swagger/doc.json. Maintained by hand in the swag template format so the
// swagger UI works without a generation step.
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
        "/login": {
            "post": {
                "description": "Accepts any non-empty username and password and returns a session token.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Open a session",
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Missing credentials"}
                }
            }
        },
        "/products": {
            "get": {
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "List all products",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Create a new product",
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Validation errors"},
                    "409": {"description": "Duplicate name"}
                }
            }
        },
        "/products/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Get product by ID",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Update a product",
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not found"},
                    "409": {"description": "Duplicate name"}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["products"],
                "summary": "Delete a product",
                "responses": {"204": {"description": "Deleted"}, "404": {"description": "Not found"}}
            }
        },
        "/products/{id}/adjust": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["inventory"],
                "summary": "Add or remove stock for a product",
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not found"},
                    "409": {"description": "Not enough stock"}
                }
            }
        },
        "/movements": {
            "get": {
                "produces": ["application/json"],
                "tags": ["movements"],
                "summary": "List the movement history",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/dashboard": {
            "get": {
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Dashboard snapshot",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/export/products": {
            "get": {
                "produces": ["text/csv"],
                "tags": ["export"],
                "summary": "Download the catalog as CSV",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/export/movements": {
            "get": {
                "produces": ["text/csv"],
                "tags": ["export"],
                "summary": "Download the movement history as CSV",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/reports/inventory": {
            "get": {
                "produces": ["application/pdf"],
                "tags": ["reports"],
                "summary": "Download the inventory report as PDF",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/reports/movements": {
            "get": {
                "produces": ["application/pdf"],
                "tags": ["reports"],
                "summary": "Download the movement history report as PDF",
                "responses": {"200": {"description": "OK"}}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
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
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Warehouse Tracker API",
	Description:      "Single-user warehouse inventory tracker: product catalog, stock movement ledger, CSV export and PDF reports.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
