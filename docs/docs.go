// Package docs registers the OpenAPI document served at /swagger.
// Keep the template in sync with the handlers and DTOs in
// internal/adapters/in/http.
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
        "/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Exchange credentials for a bearer token",
                "parameters": [
                    {
                        "description": "credentials",
                        "name": "credentials",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.LoginRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.TokenResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/auth/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register a customer or driver account",
                "parameters": [
                    {
                        "description": "registration",
                        "name": "registration",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.RegisterRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/http.CreatedResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/regions": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List service regions",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/http.RegionResponse"}}
                    }
                }
            }
        },
        "/tanks/available": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["customer"],
                "summary": "List tanks serving the caller's region",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/http.TankResponse"}}
                    }
                }
            }
        },
        "/orders": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["customer"],
                "summary": "Place an order",
                "parameters": [
                    {
                        "description": "order",
                        "name": "order",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.CreateOrderRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/http.CreatedResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/orders/my": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["customer"],
                "summary": "List the caller's orders",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/http.OrderSummaryResponse"}}
                    }
                }
            }
        },
        "/orders/pool": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["driver"],
                "summary": "List unassigned pending orders in the driver's region",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/http.OrderSummaryResponse"}}
                    }
                }
            }
        },
        "/orders/assigned": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["driver"],
                "summary": "List orders assigned to the driver",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/http.OrderSummaryResponse"}}
                    }
                }
            }
        },
        "/orders/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Order details scoped to the caller's role",
                "parameters": [
                    {"type": "string", "description": "order id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.OrderDetailsResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Delete a terminal order",
                "parameters": [
                    {"type": "string", "description": "order id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/orders/{id}/accept": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Claim a pending order",
                "parameters": [
                    {"type": "string", "description": "order id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/orders/{id}/cancel": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["customer"],
                "summary": "Cancel a pending order",
                "parameters": [
                    {"type": "string", "description": "order id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/orders/{id}/rate": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["customer"],
                "summary": "Rate a delivered order",
                "parameters": [
                    {"type": "string", "description": "order id", "name": "id", "in": "path", "required": true},
                    {
                        "description": "rating",
                        "name": "rating",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.RateOrderRequest"}
                    }
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/orders/{id}/start": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["driver"],
                "summary": "Start delivering an accepted order",
                "parameters": [
                    {"type": "string", "description": "order id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/orders/{id}/complete": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["driver"],
                "summary": "Mark an order delivered",
                "parameters": [
                    {"type": "string", "description": "order id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/admin/orders/{id}/reject": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Reject a pending order",
                "parameters": [
                    {"type": "string", "description": "order id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/admin/dashboard": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "System counters and recent orders",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.DashboardResponse"}}
                }
            }
        },
        "/admin/statistics": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Order breakdowns and a six month revenue series",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.StatisticsResponse"}}
                }
            }
        },
        "/admin/regions": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Add a service region",
                "parameters": [
                    {
                        "description": "region",
                        "name": "region",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.RegionRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/http.CreatedResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/admin/regions/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Rename a service region",
                "parameters": [
                    {"type": "string", "description": "region id", "name": "id", "in": "path", "required": true},
                    {
                        "description": "region",
                        "name": "region",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.RegionRequest"}
                    }
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Delete an empty service region",
                "parameters": [
                    {"type": "string", "description": "region id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/admin/tanks": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Add a water tank",
                "parameters": [
                    {
                        "description": "tank",
                        "name": "tank",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.TankRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/http.CreatedResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/admin/tanks/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Edit a water tank",
                "parameters": [
                    {"type": "string", "description": "tank id", "name": "id", "in": "path", "required": true},
                    {
                        "description": "tank",
                        "name": "tank",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.TankRequest"}
                    }
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Delete an unreferenced water tank",
                "parameters": [
                    {"type": "string", "description": "tank id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/admin/orders": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "List orders across every customer and driver",
                "parameters": [
                    {"type": "string", "description": "only this customer's orders", "name": "customerId", "in": "query"},
                    {"type": "string", "description": "only this driver's orders", "name": "driverId", "in": "query"}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/http.OrderSummaryResponse"}}
                    },
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/admin/customers": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "List customer accounts",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/http.CustomerAccountResponse"}}
                    }
                }
            }
        },
        "/admin/drivers": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "List driver accounts",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/http.DriverAccountResponse"}}
                    }
                }
            }
        },
        "/admin/accounts/{id}/lock": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Lock an account out of signing in",
                "parameters": [
                    {"type": "string", "description": "user id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/admin/accounts/{id}/unlock": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Let a locked account sign in again",
                "parameters": [
                    {"type": "string", "description": "user id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/admin/customers/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Edit a customer's profile and region",
                "parameters": [
                    {"type": "string", "description": "customer id", "name": "id", "in": "path", "required": true},
                    {
                        "description": "customer",
                        "name": "customer",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.EditCustomerRequest"}
                    }
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Delete a customer and everything they own",
                "parameters": [
                    {"type": "string", "description": "customer id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/admin/drivers/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Edit a driver's profile and region",
                "parameters": [
                    {"type": "string", "description": "driver id", "name": "id", "in": "path", "required": true},
                    {
                        "description": "driver",
                        "name": "driver",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.EditDriverRequest"}
                    }
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Delete a driver, returning their active orders to the pool",
                "parameters": [
                    {"type": "string", "description": "driver id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "http.CreateOrderRequest": {
            "type": "object",
            "properties": {
                "quantity": {"type": "integer"},
                "tankId": {"type": "string"}
            }
        },
        "http.CreatedResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}
            }
        },
        "http.CustomerAccountResponse": {
            "type": "object",
            "properties": {
                "address": {"type": "string"},
                "email": {"type": "string"},
                "fullName": {"type": "string"},
                "id": {"type": "string"},
                "locked": {"type": "boolean"},
                "orderCount": {"type": "integer"},
                "phone": {"type": "string"},
                "regionName": {"type": "string"},
                "userId": {"type": "string"}
            }
        },
        "http.DashboardResponse": {
            "type": "object",
            "properties": {
                "deliveredOrders": {"type": "integer"},
                "pendingOrders": {"type": "integer"},
                "recentOrders": {"type": "array", "items": {"$ref": "#/definitions/http.OrderSummaryResponse"}},
                "totalCustomers": {"type": "integer"},
                "totalDrivers": {"type": "integer"},
                "totalOrders": {"type": "integer"}
            }
        },
        "http.DriverAccountResponse": {
            "type": "object",
            "properties": {
                "activeOrders": {"type": "integer"},
                "deliveredOrders": {"type": "integer"},
                "email": {"type": "string"},
                "fullName": {"type": "string"},
                "id": {"type": "string"},
                "locked": {"type": "boolean"},
                "phone": {"type": "string"},
                "regionName": {"type": "string"},
                "userId": {"type": "string"}
            }
        },
        "http.EditCustomerRequest": {
            "type": "object",
            "properties": {
                "address": {"type": "string"},
                "fullName": {"type": "string"},
                "phone": {"type": "string"},
                "regionId": {"type": "string"}
            }
        },
        "http.EditDriverRequest": {
            "type": "object",
            "properties": {
                "fullName": {"type": "string"},
                "phone": {"type": "string"},
                "regionId": {"type": "string"}
            }
        },
        "http.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "message": {"type": "string"}
            }
        },
        "http.LoginRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "http.MonthlyStats": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "month": {"type": "string"},
                "revenue": {"type": "number"}
            }
        },
        "http.OrderDetailsResponse": {
            "type": "object",
            "properties": {
                "address": {"type": "string"},
                "comment": {"type": "string"},
                "customerName": {"type": "string"},
                "driverName": {"type": "string"},
                "id": {"type": "string"},
                "orderTime": {"type": "string"},
                "price": {"type": "number"},
                "quantity": {"type": "integer"},
                "rating": {"type": "integer"},
                "regionName": {"type": "string"},
                "status": {"type": "string"},
                "tankName": {"type": "string"}
            }
        },
        "http.OrderSummaryResponse": {
            "type": "object",
            "properties": {
                "address": {"type": "string"},
                "comment": {"type": "string"},
                "customerName": {"type": "string"},
                "driverName": {"type": "string"},
                "id": {"type": "string"},
                "orderTime": {"type": "string"},
                "price": {"type": "number"},
                "quantity": {"type": "integer"},
                "rating": {"type": "integer"},
                "status": {"type": "string"},
                "tankName": {"type": "string"}
            }
        },
        "http.RateOrderRequest": {
            "type": "object",
            "properties": {
                "comment": {"type": "string"},
                "rating": {"type": "integer"}
            }
        },
        "http.RegionCount": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "regionName": {"type": "string"}
            }
        },
        "http.RegionRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"}
            }
        },
        "http.RegionResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "http.RegisterRequest": {
            "type": "object",
            "properties": {
                "address": {"type": "string"},
                "email": {"type": "string"},
                "fullName": {"type": "string"},
                "password": {"type": "string"},
                "phone": {"type": "string"},
                "regionId": {"type": "string"},
                "role": {"type": "string"}
            }
        },
        "http.StatisticsResponse": {
            "type": "object",
            "properties": {
                "monthly": {"type": "array", "items": {"$ref": "#/definitions/http.MonthlyStats"}},
                "ordersByRegion": {"type": "array", "items": {"$ref": "#/definitions/http.RegionCount"}},
                "ordersByStatus": {"type": "array", "items": {"$ref": "#/definitions/http.StatusCount"}}
            }
        },
        "http.StatusCount": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "status": {"type": "string"}
            }
        },
        "http.TankRequest": {
            "type": "object",
            "properties": {
                "capacity": {"type": "integer"},
                "location": {"type": "string"},
                "name": {"type": "string"},
                "pricePerBarrel": {"type": "number"},
                "regionIds": {"type": "array", "items": {"type": "string"}},
                "waterType": {"type": "string"}
            }
        },
        "http.TankResponse": {
            "type": "object",
            "properties": {
                "capacity": {"type": "integer"},
                "id": {"type": "string"},
                "location": {"type": "string"},
                "name": {"type": "string"},
                "pricePerBarrel": {"type": "number"},
                "waterType": {"type": "string"}
            }
        },
        "http.TokenResponse": {
            "type": "object",
            "properties": {
                "fullName": {"type": "string"},
                "role": {"type": "string"},
                "token": {"type": "string"}
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
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Suqia Water Delivery API",
	Description:      "Role based water tank delivery order management.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
