// Package docs registers the OpenAPI document served under /swagger. It is
// kept by hand in step with the handler annotations; regenerating it with
// swag init replaces this file.
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
        "/ping": {
            "get": {
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/sessions": {
            "post": {
                "tags": ["sessions"],
                "summary": "Open a session",
                "responses": {"201": {"description": "Created"}, "401": {"description": "InvalidCredentials"}, "403": {"description": "UserInactive"}}
            }
        },
        "/users": {
            "get": {"security": [{"Bearer": []}], "tags": ["users"], "summary": "List users", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"Bearer": []}], "tags": ["users"], "summary": "Register a user", "responses": {"201": {"description": "Created"}, "409": {"description": "UsernameTaken / EmailTaken"}}}
        },
        "/clients": {
            "get": {"security": [{"Bearer": []}], "tags": ["clients"], "summary": "List clients", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"Bearer": []}], "tags": ["clients"], "summary": "Register a client", "responses": {"201": {"description": "Created"}, "400": {"description": "ValidationError"}}}
        },
        "/clients/{id}": {
            "get": {"security": [{"Bearer": []}], "tags": ["clients"], "summary": "Get a client", "responses": {"200": {"description": "OK"}, "404": {"description": "NotFound"}}}
        },
        "/products": {
            "get": {"security": [{"Bearer": []}], "tags": ["products"], "summary": "List products", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"Bearer": []}], "tags": ["products"], "summary": "Register a product", "responses": {"201": {"description": "Created"}}}
        },
        "/products/{id}": {
            "get": {"security": [{"Bearer": []}], "tags": ["products"], "summary": "Get a product", "responses": {"200": {"description": "OK"}, "404": {"description": "NotFound"}}}
        },
        "/service-orders": {
            "get": {"security": [{"Bearer": []}], "tags": ["service-orders"], "summary": "List service orders", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"Bearer": []}], "tags": ["service-orders"], "summary": "Open a service order", "responses": {"201": {"description": "Created"}, "404": {"description": "ClientNotFound"}}}
        },
        "/service-orders/suggest": {
            "post": {"security": [{"Bearer": []}], "tags": ["service-orders"], "summary": "Suggest service type and notes from a request description", "responses": {"200": {"description": "OK"}, "204": {"description": "No suggestion"}}}
        },
        "/service-orders/{id}": {
            "get": {"security": [{"Bearer": []}], "tags": ["service-orders"], "summary": "Get a service order", "responses": {"200": {"description": "OK"}, "404": {"description": "NotFound"}}},
            "put": {"security": [{"Bearer": []}], "tags": ["service-orders"], "summary": "Replace a service order", "responses": {"200": {"description": "OK"}, "404": {"description": "NotFound"}}}
        },
        "/quotes": {
            "get": {"security": [{"Bearer": []}], "tags": ["quotes"], "summary": "List quotes", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"Bearer": []}], "tags": ["quotes"], "summary": "Draft a quote", "responses": {"201": {"description": "Created"}}}
        },
        "/quotes/{id}": {
            "get": {"security": [{"Bearer": []}], "tags": ["quotes"], "summary": "Get a quote", "responses": {"200": {"description": "OK"}, "404": {"description": "NotFound"}}},
            "put": {"security": [{"Bearer": []}], "tags": ["quotes"], "summary": "Replace a quote", "responses": {"200": {"description": "OK"}, "404": {"description": "NotFound"}}}
        },
        "/maintenance-contracts": {
            "get": {"security": [{"Bearer": []}], "tags": ["maintenance-contracts"], "summary": "List maintenance contracts", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"Bearer": []}], "tags": ["maintenance-contracts"], "summary": "Sign a maintenance contract", "responses": {"201": {"description": "Created"}}}
        },
        "/maintenance-contracts/{id}": {
            "get": {"security": [{"Bearer": []}], "tags": ["maintenance-contracts"], "summary": "Get a maintenance contract", "responses": {"200": {"description": "OK"}, "404": {"description": "NotFound"}}}
        },
        "/maintenance-contracts/{id}/status": {
            "patch": {"security": [{"Bearer": []}], "tags": ["maintenance-contracts"], "summary": "Change the status of a maintenance contract", "responses": {"200": {"description": "OK"}, "400": {"description": "ValidationError"}, "404": {"description": "NotFound"}}}
        },
        "/billing/pending": {
            "get": {"security": [{"Bearer": []}], "tags": ["billing"], "summary": "Source documents waiting to be invoiced", "responses": {"200": {"description": "OK"}}}
        },
        "/billing/pending/{origin_type}/{origin_id}/items": {
            "get": {"security": [{"Bearer": []}], "tags": ["billing"], "summary": "Proposed invoice lines for a source document", "responses": {"200": {"description": "OK"}, "404": {"description": "OriginNotFound"}}}
        },
        "/invoices": {
            "get": {"security": [{"Bearer": []}], "tags": ["invoices"], "summary": "List invoices", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"Bearer": []}], "tags": ["invoices"], "summary": "Issue an invoice", "responses": {"201": {"description": "Created"}, "404": {"description": "OriginNotFound / ClientNotFound"}, "409": {"description": "AlreadyInvoiced"}}}
        },
        "/invoices/{id}": {
            "get": {"security": [{"Bearer": []}], "tags": ["invoices"], "summary": "Get an invoice", "responses": {"200": {"description": "OK"}, "404": {"description": "InvoiceNotFound"}}}
        },
        "/invoices/{id}/status": {
            "patch": {"security": [{"Bearer": []}], "tags": ["invoices"], "summary": "Change the payment status of an invoice", "responses": {"200": {"description": "OK"}, "404": {"description": "InvoiceNotFound"}}}
        },
        "/reports/documents": {
            "get": {"security": [{"Bearer": []}], "tags": ["reports"], "summary": "Look a document up by number", "responses": {"200": {"description": "OK"}, "404": {"description": "NotFound"}}}
        },
        "/reports/dashboard": {
            "get": {"security": [{"Bearer": []}], "tags": ["reports"], "summary": "Service order dashboard", "responses": {"200": {"description": "OK"}}}
        }
    },
    "securityDefinitions": {
        "Bearer": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo is the registered spec; Host and Schemes may be overridden at start.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "Field Service API",
	Description:      "Clients, service orders, quotes, maintenance contracts and invoicing for a field-service business.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
