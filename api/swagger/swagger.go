package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "School Calendar API",
        "description": "REST API backing the district event-calendar web app",
        "version": "1.0.0"
    },
    "basePath": "/api",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "System", "description": "Health, schema and metrics"},
        {"name": "Admin", "description": "Shared-password admin sessions"},
        {"name": "Events", "description": "Calendar events and curriculum entries"},
        {"name": "Days", "description": "A/B day labels and special days"},
        {"name": "Materials", "description": "Supplementary materials"},
        {"name": "Site", "description": "Per-school settings and banner"},
        {"name": "Links", "description": "Per-school custom links"},
        {"name": "Buttons", "description": "Home-page buttons"}
    ],
    "paths": {
        "/health": {
            "get": {
                "tags": ["System"],
                "summary": "Probe database reachability",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "500": {"description": "Store unreachable or unconfigured"}
                }
            }
        },
        "/init": {
            "post": {
                "tags": ["System"],
                "summary": "Create the schema if absent",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/clear-all": {
            "delete": {
                "tags": ["System"],
                "summary": "Wipe every data table",
                "parameters": [
                    {"name": "X-Admin-Session", "in": "header", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Missing or expired admin session"}
                }
            }
        },
        "/admin/login": {
            "post": {
                "tags": ["Admin"],
                "summary": "Exchange the admin password for a session token",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Wrong password"}
                }
            }
        },
        "/admin/logout": {
            "post": {
                "tags": ["Admin"],
                "summary": "Revoke the presented session token",
                "parameters": [
                    {"name": "X-Admin-Session", "in": "header", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/admin/verify": {
            "post": {
                "tags": ["Admin"],
                "summary": "Report whether the presented session token is live",
                "parameters": [
                    {"name": "X-Admin-Session", "in": "header", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/admin/metrics": {
            "get": {
                "tags": ["System"],
                "summary": "Summarize request and cache metrics",
                "parameters": [
                    {"name": "X-Admin-Session", "in": "header", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Missing or expired admin session"}
                }
            }
        },
        "/day-schedules": {
            "get": {
                "tags": ["Days"],
                "summary": "List A/B day labels",
                "parameters": [
                    {"name": "school", "in": "query", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Unknown school"}
                }
            },
            "post": {
                "tags": ["Days"],
                "summary": "Set or clear a date's A/B day label",
                "parameters": [
                    {"name": "X-Admin-Session", "in": "header", "type": "string", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/DayLabelRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Validation failure"},
                    "401": {"description": "Missing or expired admin session"}
                }
            }
        },
        "/day-types": {
            "get": {
                "tags": ["Days"],
                "summary": "List special days",
                "parameters": [
                    {"name": "school", "in": "query", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            },
            "post": {
                "tags": ["Days"],
                "summary": "Set or clear a date's special day type",
                "parameters": [
                    {"name": "X-Admin-Session", "in": "header", "type": "string", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SpecialDayRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/events": {
            "get": {
                "tags": ["Events"],
                "summary": "List events for a school",
                "parameters": [
                    {"name": "school", "in": "query", "type": "string", "required": true},
                    {"name": "department", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Unknown school"}
                }
            },
            "post": {
                "tags": ["Events"],
                "summary": "Create an event",
                "parameters": [
                    {"name": "X-Admin-Session", "in": "header", "type": "string", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/EventRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Validation failure"},
                    "401": {"description": "Missing or expired admin session"}
                }
            }
        },
        "/events/{id}": {
            "put": {
                "tags": ["Events"],
                "summary": "Update an event",
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true},
                    {"name": "X-Admin-Session", "in": "header", "type": "string", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/EventRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "No such event"}
                }
            },
            "delete": {
                "tags": ["Events"],
                "summary": "Delete an event and its curriculum entries",
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true},
                    {"name": "X-Admin-Session", "in": "header", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "No such event"}
                }
            }
        },
        "/{school}/events": {
            "get": {
                "tags": ["Events"],
                "summary": "List a school's events with curriculum entries",
                "parameters": [
                    {"name": "school", "in": "path", "type": "string", "required": true},
                    {"name": "department", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Unknown school"}
                }
            },
            "post": {
                "tags": ["Events"],
                "summary": "Create an event under a school",
                "parameters": [
                    {"name": "school", "in": "path", "type": "string", "required": true},
                    {"name": "X-Admin-Session", "in": "header", "type": "string", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/EventRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created"}
                }
            }
        },
        "/{school}/events/export": {
            "get": {
                "tags": ["Events"],
                "summary": "Export a school's schedule as CSV or PDF",
                "parameters": [
                    {"name": "school", "in": "path", "type": "string", "required": true},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "File payload"}
                }
            }
        },
        "/{school}/day-labels": {
            "get": {
                "tags": ["Days"],
                "summary": "List a school's A/B day labels",
                "parameters": [
                    {"name": "school", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/{school}/day-labels/{date}": {
            "put": {
                "tags": ["Days"],
                "summary": "Set or clear the label for one date",
                "parameters": [
                    {"name": "school", "in": "path", "type": "string", "required": true},
                    {"name": "date", "in": "path", "type": "string", "required": true},
                    {"name": "X-Admin-Session", "in": "header", "type": "string", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/DayLabelRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/{school}/special-days": {
            "get": {
                "tags": ["Days"],
                "summary": "List a school's special days",
                "parameters": [
                    {"name": "school", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/{school}/special-days/{date}": {
            "put": {
                "tags": ["Days"],
                "summary": "Set or clear the special day type for one date",
                "parameters": [
                    {"name": "school", "in": "path", "type": "string", "required": true},
                    {"name": "date", "in": "path", "type": "string", "required": true},
                    {"name": "X-Admin-Session", "in": "header", "type": "string", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SpecialDayRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/materials": {
            "get": {
                "tags": ["Materials"],
                "summary": "List a school's materials",
                "parameters": [
                    {"name": "school", "in": "query", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            },
            "post": {
                "tags": ["Materials"],
                "summary": "Create a material",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/MaterialRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/materials/{id}": {
            "put": {
                "tags": ["Materials"],
                "summary": "Update a material",
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/MaterialRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "No such material"}
                }
            },
            "delete": {
                "tags": ["Materials"],
                "summary": "Delete a material",
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "No such material"}
                }
            }
        },
        "/{school}/settings": {
            "get": {
                "tags": ["Site"],
                "summary": "Fetch a school's style document",
                "parameters": [
                    {"name": "school", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            },
            "put": {
                "tags": ["Site"],
                "summary": "Replace a school's style document",
                "parameters": [
                    {"name": "school", "in": "path", "type": "string", "required": true},
                    {"name": "X-Admin-Session", "in": "header", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/{school}/banner": {
            "get": {
                "tags": ["Site"],
                "summary": "Fetch a school's banner",
                "parameters": [
                    {"name": "school", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            },
            "put": {
                "tags": ["Site"],
                "summary": "Replace a school's banner",
                "parameters": [
                    {"name": "school", "in": "path", "type": "string", "required": true},
                    {"name": "X-Admin-Session", "in": "header", "type": "string", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/BannerRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/{school}/links": {
            "get": {
                "tags": ["Links"],
                "summary": "List a school's links in slot order",
                "parameters": [
                    {"name": "school", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            },
            "post": {
                "tags": ["Links"],
                "summary": "Create a link",
                "parameters": [
                    {"name": "school", "in": "path", "type": "string", "required": true},
                    {"name": "X-Admin-Session", "in": "header", "type": "string", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LinkRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/{school}/links/{id}": {
            "put": {
                "tags": ["Links"],
                "summary": "Update a link",
                "parameters": [
                    {"name": "school", "in": "path", "type": "string", "required": true},
                    {"name": "id", "in": "path", "type": "integer", "required": true},
                    {"name": "X-Admin-Session", "in": "header", "type": "string", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LinkRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "No such link"}
                }
            },
            "delete": {
                "tags": ["Links"],
                "summary": "Delete a link",
                "parameters": [
                    {"name": "school", "in": "path", "type": "string", "required": true},
                    {"name": "id", "in": "path", "type": "integer", "required": true},
                    {"name": "X-Admin-Session", "in": "header", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "No such link"}
                }
            }
        },
        "/home/buttons": {
            "get": {
                "tags": ["Buttons"],
                "summary": "List every school's home button",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/home/buttons/{school}": {
            "get": {
                "tags": ["Buttons"],
                "summary": "Fetch one school's home button",
                "parameters": [
                    {"name": "school", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "No button stored"}
                }
            },
            "put": {
                "tags": ["Buttons"],
                "summary": "Replace one school's home button",
                "parameters": [
                    {"name": "school", "in": "path", "type": "string", "required": true},
                    {"name": "X-Admin-Session", "in": "header", "type": "string", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ButtonRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Image too large or wrong MIME type"}
                }
            }
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "properties": {
                "password": {"type": "string"}
            }
        },
        "DayLabelRequest": {
            "type": "object",
            "properties": {
                "school": {"type": "string"},
                "date": {"type": "string"},
                "label": {"type": "string", "enum": ["A", "B", ""]}
            }
        },
        "SpecialDayRequest": {
            "type": "object",
            "properties": {
                "school": {"type": "string"},
                "date": {"type": "string"},
                "type": {"type": "string"},
                "description": {"type": "string"}
            }
        },
        "EventRequest": {
            "type": "object",
            "properties": {
                "school": {"type": "string"},
                "date": {"type": "string"},
                "title": {"type": "string"},
                "time": {"type": "string"},
                "department": {"type": "string"},
                "description": {"type": "string"},
                "lifeCurriculum": {"type": "object"}
            }
        },
        "MaterialRequest": {
            "type": "object",
            "properties": {
                "school": {"type": "string"},
                "date": {"type": "string"},
                "grade": {"type": "integer"},
                "title": {"type": "string"},
                "link": {"type": "string"},
                "description": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "BannerRequest": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "active": {"type": "boolean"},
                "text_size": {"type": "string"},
                "text_color": {"type": "string"},
                "background_color": {"type": "string"}
            }
        },
        "LinkRequest": {
            "type": "object",
            "properties": {
                "position": {"type": "string", "enum": ["left", "right"]},
                "title": {"type": "string"},
                "url": {"type": "string"},
                "sort_index": {"type": "integer"},
                "text_color": {"type": "string"},
                "background_color": {"type": "string"}
            }
        },
        "ButtonRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "image_data": {"type": "string"},
                "image_mime": {"type": "string"}
            }
        },
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
                "meta": {"type": "object"}
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
