// Package docs holds the swagger spec for the formcheck API, kept in the
// layout swag init emits for the annotations in internal/api. Update it
// with those annotations: swag init -g internal/api/api.go
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
        "/api/fields/{field}/validate": {
            "post": {
                "description": "Runs the rule for the field against the value and the\ncontext values it depends on. A failing rule is not an\nerror: the verdict is always returned with status 200.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Fields"
                ],
                "summary": "Validate one form field.",
                "parameters": [
                    {
                        "enum": [
                            "fullName",
                            "email",
                            "password",
                            "confirmPassword"
                        ],
                        "type": "string",
                        "description": "Field id",
                        "name": "field",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Validate Field Request",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/fields.ValidateFieldRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/fields.ValidateFieldResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/error.Error"
                        }
                    },
                    "404": {
                        "description": "Unknown field",
                        "schema": {
                            "$ref": "#/definitions/error.Error"
                        }
                    }
                }
            }
        },
        "/api/password/strength": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Fields"
                ],
                "summary": "Score password strength.",
                "parameters": [
                    {
                        "description": "Strength Request",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/fields.StrengthRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/fields.StrengthResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/error.Error"
                        }
                    }
                }
            }
        },
        "/api/ping": {
            "get": {
                "tags": [
                    "Ping"
                ],
                "summary": "Ping endpoint.",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/api/register": {
            "post": {
                "description": "Validates every field. Nothing is stored: a valid\nsubmission only returns a confirmation.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Register"
                ],
                "summary": "Submit the registration form.",
                "parameters": [
                    {
                        "description": "Register Request",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/register.RegisterRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/register.RegisterResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/error.Error"
                        }
                    },
                    "422": {
                        "description": "Unprocessible Entity",
                        "schema": {
                            "$ref": "#/definitions/register.ValidationFailedResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "error.Error": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string"
                },
                "error_id": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                },
                "status": {
                    "type": "integer"
                }
            }
        },
        "fields.StrengthRequest": {
            "type": "object",
            "properties": {
                "password": {
                    "type": "string",
                    "maxLength": 256
                }
            }
        },
        "fields.StrengthResponse": {
            "type": "object",
            "properties": {
                "class": {
                    "type": "string"
                },
                "entropy_bits": {
                    "type": "number"
                },
                "label": {
                    "type": "string"
                },
                "score": {
                    "type": "integer"
                },
                "text": {
                    "type": "string"
                }
            }
        },
        "fields.ValidateFieldRequest": {
            "type": "object",
            "properties": {
                "context": {
                    "$ref": "#/definitions/validation.Context"
                },
                "value": {
                    "type": "string",
                    "maxLength": 256
                }
            }
        },
        "fields.ValidateFieldResponse": {
            "type": "object",
            "properties": {
                "field": {
                    "type": "string"
                },
                "indicator": {
                    "$ref": "#/definitions/form.StrengthIndicator"
                },
                "message": {
                    "type": "string"
                },
                "state": {
                    "$ref": "#/definitions/form.FieldState"
                },
                "strength": {
                    "$ref": "#/definitions/password.Report"
                },
                "valid": {
                    "type": "boolean"
                }
            }
        },
        "form.FieldState": {
            "type": "object",
            "properties": {
                "class": {
                    "type": "string"
                },
                "error_text": {
                    "type": "string"
                },
                "error_visible": {
                    "type": "boolean"
                },
                "id": {
                    "type": "string"
                }
            }
        },
        "form.StrengthIndicator": {
            "type": "object",
            "properties": {
                "class": {
                    "type": "string"
                },
                "text": {
                    "type": "string"
                }
            }
        },
        "password.Level": {
            "type": "object",
            "properties": {
                "class": {
                    "type": "string"
                },
                "label": {
                    "type": "string"
                }
            }
        },
        "password.Report": {
            "type": "object",
            "properties": {
                "entropy_bits": {
                    "type": "number"
                },
                "level": {
                    "$ref": "#/definitions/password.Level"
                },
                "score": {
                    "type": "integer"
                }
            }
        },
        "register.RegisterRequest": {
            "type": "object",
            "properties": {
                "confirm_password": {
                    "type": "string",
                    "maxLength": 256
                },
                "email": {
                    "type": "string",
                    "maxLength": 256
                },
                "full_name": {
                    "type": "string",
                    "maxLength": 256
                },
                "password": {
                    "type": "string",
                    "maxLength": 256
                }
            }
        },
        "register.RegisterResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                }
            }
        },
        "register.ValidationFailedResponse": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string"
                },
                "error_id": {
                    "type": "string"
                },
                "fields": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/form.FieldState"
                    }
                },
                "indicator": {
                    "$ref": "#/definitions/form.StrengthIndicator"
                },
                "message": {
                    "type": "string"
                },
                "status": {
                    "type": "integer"
                }
            }
        },
        "validation.Context": {
            "type": "object",
            "properties": {
                "full_name": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                }
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
	Title:            "formcheck API",
	Description:      "Live validation for the registration form.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
