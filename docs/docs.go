// Package docs holds the swagger document served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support",
            "email": "support@example.com"
        },
        "license": {
            "name": "Apache 2.0",
            "url": "http://www.apache.org/licenses/LICENSE-2.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/charts/prepare": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "charts"
                ],
                "summary": "Prepare chart data",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Request body",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            }
        },
        "/marketing/welcome-card": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "marketing"
                ],
                "summary": "Get the marketing welcome card state",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/marketing/welcome-card/hide": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "marketing"
                ],
                "summary": "Hide the marketing welcome card",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/notices": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "notices"
                ],
                "summary": "Drain notices",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/navigation": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "notices"
                ],
                "summary": "Get the dashboard location",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/options": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "options"
                ],
                "summary": "Get store options",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Comma separated option names",
                        "name": "names",
                        "in": "query",
                        "required": true
                    }
                ]
            },
            "put": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "options"
                ],
                "summary": "Update store options",
                "responses": {
                    "202": {
                        "description": "Accepted"
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Request body",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            }
        },
        "/tasks/payments": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "payments"
                ],
                "summary": "Get the payments task",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/tasks/payments/refresh": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "payments"
                ],
                "summary": "Refresh the payments task",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/tasks/payments/methods/{key}/toggle": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "payments"
                ],
                "summary": "Toggle a payment method",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Payment method key",
                        "name": "key",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/tasks/payments/methods/{key}/configure": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "payments"
                ],
                "summary": "Configure a payment method",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Payment method key",
                        "name": "key",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/tasks/payments/methods/{key}/configured": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "payments"
                ],
                "summary": "Mark a payment method configured",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Payment method key",
                        "name": "key",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/tasks/payments/methods/{key}/configuration-finished": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "payments"
                ],
                "summary": "Close a payment method's setup",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Payment method key",
                        "name": "key",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/tasks/payments/methods/{key}/install": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "payments"
                ],
                "summary": "Install a payment method's plugins",
                "responses": {
                    "202": {
                        "description": "Accepted"
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Payment method key",
                        "name": "key",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/tasks/payments/complete": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "payments"
                ],
                "summary": "Complete the payments task",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/tasks/payments/skip": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "payments"
                ],
                "summary": "Skip the payments task",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8000",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Store Admin API",
	Description:      "API behind the store admin dashboard: chart data, the payments onboarding task and store options.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
