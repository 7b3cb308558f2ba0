// Package docs holds the OpenAPI document of the v1 API, kept in step with the
// swag annotations on cmd/api and api/handlers, and registers it with swag.
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
        "/cities": {
            "get": {
                "description": "One page of cities, optionally sorted and filtered by a case-sensitive prefix",
                "produces": ["application/json"],
                "tags": ["cities"],
                "summary": "List cities",
                "parameters": [
                    {"type": "integer", "description": "Zero-based page index", "name": "pageIndex", "in": "query"},
                    {"type": "integer", "description": "Page size (clamped to the configured maximum)", "name": "pageSize", "in": "query"},
                    {"type": "string", "description": "id, name, lat, lon, countryId or countryName", "name": "sortColumn", "in": "query"},
                    {"type": "string", "description": "ASC or DESC (default DESC)", "name": "sortOrder", "in": "query"},
                    {"type": "string", "description": "Column the prefix filter applies to", "name": "filterColumn", "in": "query"},
                    {"type": "string", "description": "Prefix to match", "name": "filterQuery", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.PaginationCityDTO"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponseDTO"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/dto.ErrorResponseDTO"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["cities"],
                "summary": "Create city",
                "parameters": [
                    {"description": "City", "name": "city", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CityInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.CityDTO"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponseDTO"}}
                }
            }
        },
        "/cities/is-dupe": {
            "post": {
                "description": "true when another city has the same name, coordinates and country",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["cities"],
                "summary": "Check for a duplicate city",
                "parameters": [
                    {"description": "City", "name": "city", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CityInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "boolean"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponseDTO"}}
                }
            }
        },
        "/cities/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["cities"],
                "summary": "Get city by id",
                "parameters": [
                    {"type": "integer", "description": "City id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CityDTO"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponseDTO"}}
                }
            },
            "put": {
                "description": "The body id must equal the path id",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["cities"],
                "summary": "Update city",
                "parameters": [
                    {"type": "integer", "description": "City id", "name": "id", "in": "path", "required": true},
                    {"description": "City", "name": "city", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CityInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CityDTO"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponseDTO"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponseDTO"}}
                }
            },
            "delete": {
                "tags": ["cities"],
                "summary": "Delete city",
                "parameters": [
                    {"type": "integer", "description": "City id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponseDTO"}}
                }
            }
        },
        "/countries": {
            "get": {
                "description": "One page of countries with their city counts",
                "produces": ["application/json"],
                "tags": ["countries"],
                "summary": "List countries",
                "parameters": [
                    {"type": "integer", "description": "Zero-based page index", "name": "pageIndex", "in": "query"},
                    {"type": "integer", "description": "Page size (clamped to the configured maximum)", "name": "pageSize", "in": "query"},
                    {"type": "string", "description": "id, name, iso2, iso3 or totCities", "name": "sortColumn", "in": "query"},
                    {"type": "string", "description": "ASC or DESC (default DESC)", "name": "sortOrder", "in": "query"},
                    {"type": "string", "description": "Column the prefix filter applies to", "name": "filterColumn", "in": "query"},
                    {"type": "string", "description": "Prefix to match", "name": "filterQuery", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.PaginationCountryDTO"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponseDTO"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/dto.ErrorResponseDTO"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["countries"],
                "summary": "Create country",
                "parameters": [
                    {"description": "Country", "name": "country", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CountryInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.CountryDTO"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponseDTO"}}
                }
            }
        },
        "/countries/is-dupe-field": {
            "post": {
                "description": "true when another country already has fieldValue in fieldName (name, iso2 or iso3)",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["countries"],
                "summary": "Check for a duplicate country field",
                "parameters": [
                    {"description": "Field check", "name": "check", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.IsDupeFieldInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "boolean"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponseDTO"}}
                }
            }
        },
        "/countries/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["countries"],
                "summary": "Get country by id",
                "parameters": [
                    {"type": "integer", "description": "Country id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CountryDTO"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponseDTO"}}
                }
            },
            "put": {
                "description": "The body id must equal the path id",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["countries"],
                "summary": "Update country",
                "parameters": [
                    {"type": "integer", "description": "Country id", "name": "id", "in": "path", "required": true},
                    {"description": "Country", "name": "country", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CountryInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CountryDTO"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponseDTO"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponseDTO"}}
                }
            },
            "delete": {
                "description": "Deletes the country and all of its cities",
                "tags": ["countries"],
                "summary": "Delete country",
                "parameters": [
                    {"type": "integer", "description": "Country id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponseDTO"}}
                }
            }
        }
    },
    "definitions": {
        "dto.CityDTO": {
            "type": "object",
            "properties": {
                "countryId": {"type": "integer"},
                "countryName": {"type": "string"},
                "id": {"type": "integer"},
                "lat": {"type": "number"},
                "lon": {"type": "number"},
                "name": {"type": "string"}
            }
        },
        "dto.CityInput": {
            "type": "object",
            "required": ["countryId", "lat", "lon", "name"],
            "properties": {
                "countryId": {"type": "integer", "example": 1},
                "id": {"type": "integer"},
                "lat": {"type": "number", "maximum": 90, "minimum": -90, "example": 48.8566},
                "lon": {"type": "number", "maximum": 180, "minimum": -180, "example": 2.3522},
                "name": {"type": "string", "maxLength": 200, "example": "Paris"}
            }
        },
        "dto.CountryDTO": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "iso2": {"type": "string"},
                "iso3": {"type": "string"},
                "name": {"type": "string"},
                "totCities": {"type": "integer"}
            }
        },
        "dto.CountryInput": {
            "type": "object",
            "required": ["iso2", "iso3", "name"],
            "properties": {
                "id": {"type": "integer"},
                "iso2": {"type": "string", "example": "FR"},
                "iso3": {"type": "string", "example": "FRA"},
                "name": {"type": "string", "maxLength": 200, "example": "France"}
            }
        },
        "dto.ErrorResponseDTO": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "paging: property 'foo' does not exist"}
            }
        },
        "dto.IsDupeFieldInput": {
            "type": "object",
            "required": ["fieldName", "fieldValue"],
            "properties": {
                "countryId": {"type": "integer"},
                "fieldName": {"type": "string", "example": "iso2"},
                "fieldValue": {"type": "string", "example": "FR"}
            }
        },
        "dto.PaginationCityDTO": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/dto.CityDTO"}},
                "filterColumn": {"type": "string"},
                "filterQuery": {"type": "string"},
                "hasNextPage": {"type": "boolean"},
                "hasPreviousPage": {"type": "boolean"},
                "pageIndex": {"type": "integer"},
                "pageSize": {"type": "integer"},
                "sortColumn": {"type": "string"},
                "sortOrder": {"type": "string"},
                "totalCount": {"type": "integer"},
                "totalPages": {"type": "integer"}
            }
        },
        "dto.PaginationCountryDTO": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/dto.CountryDTO"}},
                "filterColumn": {"type": "string"},
                "filterQuery": {"type": "string"},
                "hasNextPage": {"type": "boolean"},
                "hasPreviousPage": {"type": "boolean"},
                "pageIndex": {"type": "integer"},
                "pageSize": {"type": "integer"},
                "sortColumn": {"type": "string"},
                "sortOrder": {"type": "string"},
                "totalCount": {"type": "integer"},
                "totalPages": {"type": "integer"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "World Cities API",
	Description:      "Paged, sortable and filterable listings of cities and countries",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
