// Package docs registers the OpenAPI description served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/forecast": {
            "get": {
                "description": "Returns the short-term forecast two hours ahead for a KMA grid cell, addressed by nx/ny or by lat/lon. Without parameters the configured cell is used.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Forecast"
                ],
                "summary": "Get short-term forecast",
                "parameters": [
                    {
                        "type": "integer",
                        "example": 62,
                        "description": "Grid x (1-149)",
                        "name": "nx",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "example": 128,
                        "description": "Grid y (1-253)",
                        "name": "ny",
                        "in": "query"
                    },
                    {
                        "type": "number",
                        "example": 37.5665,
                        "description": "Latitude, used with lon instead of nx/ny",
                        "name": "lat",
                        "in": "query"
                    },
                    {
                        "type": "number",
                        "example": 126.978,
                        "description": "Longitude, used with lat instead of nx/ny",
                        "name": "lon",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "example": "서울",
                        "description": "Display name of the location",
                        "name": "location",
                        "in": "query"
                    },
                    {
                        "enum": [
                            "ko",
                            "en"
                        ],
                        "type": "string",
                        "description": "Language of labels and values",
                        "name": "locale",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Successful response",
                        "schema": {
                            "$ref": "#/definitions/http.ForecastResponse"
                        }
                    },
                    "400": {
                        "description": "Bad request - invalid parameters",
                        "schema": {
                            "$ref": "#/definitions/http.ErrorResponse"
                        }
                    },
                    "502": {
                        "description": "Forecast portal failure",
                        "schema": {
                            "$ref": "#/definitions/http.ErrorResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "http.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string",
                    "example": "nx and ny must both be set"
                }
            }
        },
        "http.FieldResponse": {
            "type": "object",
            "properties": {
                "category": {
                    "type": "string",
                    "example": "SKY"
                },
                "label": {
                    "type": "string",
                    "example": "하늘"
                },
                "value": {
                    "type": "string",
                    "example": "맑음 ☀️"
                }
            }
        },
        "http.ForecastResponse": {
            "type": "object",
            "properties": {
                "available": {
                    "type": "boolean",
                    "example": true
                },
                "base_date": {
                    "type": "string",
                    "example": "20250725"
                },
                "base_time": {
                    "type": "string",
                    "example": "0500"
                },
                "fields": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/http.FieldResponse"
                    }
                },
                "location": {
                    "type": "string",
                    "example": "양주시"
                },
                "message": {
                    "type": "string",
                    "example": "해당 시간의 정보가 없습니다."
                },
                "nx": {
                    "type": "integer",
                    "example": 62
                },
                "ny": {
                    "type": "integer",
                    "example": 128
                },
                "summary": {
                    "type": "string",
                    "example": "양주시 09시 날씨 예보"
                },
                "target_date": {
                    "type": "string",
                    "example": "20250725"
                },
                "target_time": {
                    "type": "string",
                    "example": "0900"
                }
            }
        }
    },
    "tags": [
        {
            "description": "Short-term forecast operations",
            "name": "Forecast"
        }
    ]
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "KMA Forecast API",
	Description:      "Short-term village forecast of the Korea Meteorological Administration for a grid cell, two hours ahead.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
