// Package docs holds the hand-maintained Swagger document served under /swagger.
// Keep it in sync with the handler annotations when routes change.
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
        "/certificates": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["certificates"],
                "summary": "Create a certificate and compute its next survey",
                "parameters": [
                    {"name": "certificate", "in": "body", "required": true, "schema": {"$ref": "#/definitions/request.CertificateRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.CertificateResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/pkg.HTTPError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/certificates/upcoming-surveys": {
            "get": {
                "produces": ["application/json"],
                "tags": ["surveys"],
                "summary": "List certificates whose survey window contains today",
                "parameters": [
                    {"type": "string", "name": "X-Company-ID", "in": "header", "required": true},
                    {"type": "integer", "name": "days", "in": "query", "description": "Echoed back; inclusion follows each certificate's window"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.UpcomingSurveysResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/certificates/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["certificates"],
                "summary": "Get a certificate",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.CertificateResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["certificates"],
                "summary": "Replace a certificate and recompute its next survey",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "certificate", "in": "body", "required": true, "schema": {"$ref": "#/definitions/request.CertificateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.CertificateResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/pkg.HTTPError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/certificates/{id}/update-next-survey": {
            "post": {
                "produces": ["application/json"],
                "tags": ["surveys"],
                "summary": "Recompute next survey for every certificate of a ship",
                "parameters": [{"type": "string", "description": "Ship ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.RecomputeResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/ships": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["fleet"],
                "summary": "Create a ship",
                "parameters": [
                    {"type": "string", "name": "X-Company-ID", "in": "header"},
                    {"name": "ship", "in": "body", "required": true, "schema": {"$ref": "#/definitions/request.ShipRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.ShipResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/ships/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["fleet"],
                "summary": "Get a ship",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.ShipResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/ships/{id}/certificates": {
            "get": {
                "produces": ["application/json"],
                "tags": ["certificates"],
                "summary": "List the certificates of a ship",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/response.CertificateResponse"}}}
                }
            }
        },
        "/companies": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["fleet"],
                "summary": "Create a company",
                "parameters": [{"name": "company", "in": "body", "required": true, "schema": {"$ref": "#/definitions/request.CompanyRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.CompanyResponse"}}
                }
            }
        },
        "/companies/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["fleet"],
                "summary": "Get a company",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.CompanyResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        }
    },
    "definitions": {
        "pkg.HTTPError": {
            "type": "object",
            "properties": {"code": {"type": "string"}, "message": {"type": "string"}}
        },
        "request.CertificateRequest": {
            "type": "object",
            "required": ["cert_name"],
            "properties": {
                "ship_id": {"type": "string"},
                "cert_name": {"type": "string"},
                "cert_type": {"type": "string"},
                "cert_no": {"type": "string"},
                "issued_by": {"type": "string"},
                "issue_date": {"type": "string"},
                "valid_date": {"type": "string"},
                "last_endorse": {"type": "string"}
            }
        },
        "request.ShipRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "name": {"type": "string"},
                "imo": {"type": "string"},
                "company": {"type": "string"},
                "flag": {"type": "string"},
                "anniversary_day": {"type": "integer"},
                "anniversary_month": {"type": "integer"},
                "special_survey_cycle_start": {"type": "string"},
                "delivery_date": {"type": "string"}
            }
        },
        "request.CompanyRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {"name": {"type": "string"}}
        },
        "response.CertificateResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "ship_id": {"type": "string"},
                "cert_name": {"type": "string"},
                "cert_type": {"type": "string"},
                "issue_date": {"type": "string"},
                "valid_date": {"type": "string"},
                "last_endorse": {"type": "string"},
                "next_survey": {"type": "string"},
                "next_survey_display": {"type": "string"},
                "next_survey_type": {"type": "string"},
                "next_survey_date": {"type": "string"},
                "window_anchor": {"type": "string"},
                "window_type": {"type": "string"},
                "window_months": {"type": "integer"},
                "status": {"type": "string"}
            }
        },
        "response.ShipResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "imo": {"type": "string"},
                "company": {"type": "string"},
                "anniversary_day": {"type": "integer"},
                "anniversary_month": {"type": "integer"},
                "special_survey_cycle_start": {"type": "string"},
                "delivery_date": {"type": "string"}
            }
        },
        "response.CompanyResponse": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "name": {"type": "string"}}
        },
        "response.RecomputeResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "ship_id": {"type": "string"},
                "ship_name": {"type": "string"},
                "total_certificates": {"type": "integer"},
                "updated_count": {"type": "integer"},
                "error_count": {"type": "integer"},
                "results": {"type": "array", "items": {"type": "object"}}
            }
        },
        "response.UpcomingSurveysResponse": {
            "type": "object",
            "properties": {
                "upcoming_surveys": {"type": "array", "items": {"type": "object"}},
                "total_count": {"type": "integer"},
                "company": {"type": "string"},
                "check_date": {"type": "string"},
                "days": {"type": "integer"},
                "skipped_count": {"type": "integer"},
                "logic_info": {"type": "object"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "Fleet Survey API",
	Description:      "Certificate survey scheduling (next survey calculation + upcoming surveys) backed by DynamoDB.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
