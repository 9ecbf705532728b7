// Package docs holds the OpenAPI description of the storefront API served at /swagger/.
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
		"/products": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Products"
				],
				"summary": "List products",
				"parameters": [
					{
						"type": "string",
						"description": "Search term",
						"name": "search",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Category id or all",
						"name": "category",
						"in": "query"
					},
					{
						"type": "string",
						"description": "featured, price-low, price-high, rating or downloads",
						"name": "sort",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "Matching products",
						"schema": {
							"$ref": "#/definitions/handlers.ProductListResponse"
						}
					}
				}
			}
		},
		"/products/featured": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Products"
				],
				"summary": "List featured products",
				"responses": {
					"200": {
						"description": "Featured products",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.Product"
							}
						}
					}
				}
			}
		},
		"/products/{id}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Products"
				],
				"summary": "Get a product by ID",
				"parameters": [
					{
						"type": "integer",
						"description": "ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "Product details",
						"schema": {
							"$ref": "#/definitions/handlers.ProductDetailResponse"
						}
					},
					"400": {
						"description": "Invalid product id",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					},
					"404": {
						"description": "Product not found",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					}
				}
			}
		},
		"/products/{id}/related": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Products"
				],
				"summary": "List related products",
				"parameters": [
					{
						"type": "integer",
						"description": "ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "Related products",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.Product"
							}
						}
					},
					"404": {
						"description": "Product not found",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					}
				}
			}
		},
		"/categories": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Catalog"
				],
				"summary": "List categories",
				"responses": {
					"200": {
						"description": "Categories",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.CategoryCount"
							}
						}
					}
				}
			}
		},
		"/testimonials": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Catalog"
				],
				"summary": "List testimonials",
				"responses": {
					"200": {
						"description": "Testimonials",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.Testimonial"
							}
						}
					}
				}
			}
		},
		"/faqs": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Catalog"
				],
				"summary": "List FAQs",
				"responses": {
					"200": {
						"description": "FAQs",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.FAQ"
							}
						}
					}
				}
			}
		},
		"/cart": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Cart"
				],
				"summary": "Get the session cart",
				"responses": {
					"200": {
						"description": "Cart summary",
						"schema": {
							"$ref": "#/definitions/models.CartSummary"
						}
					}
				}
			},
			"delete": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Cart"
				],
				"summary": "Empty the cart",
				"responses": {
					"200": {
						"description": "Empty cart",
						"schema": {
							"$ref": "#/definitions/models.CartSummary"
						}
					}
				}
			}
		},
		"/cart/items": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Cart"
				],
				"summary": "Add a product to the cart",
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "models.AddItemRequest",
						"name": "item",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/models.AddItemRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "Updated cart",
						"schema": {
							"$ref": "#/definitions/models.CartSummary"
						}
					},
					"400": {
						"description": "Validation error",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					},
					"404": {
						"description": "Product not found",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					}
				}
			}
		},
		"/cart/items/{id}": {
			"put": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Cart"
				],
				"summary": "Set the quantity of a cart item",
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "models.UpdateQuantityRequest",
						"name": "quantity",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/models.UpdateQuantityRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "Updated cart",
						"schema": {
							"$ref": "#/definitions/models.CartSummary"
						}
					},
					"400": {
						"description": "Validation error",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					}
				}
			},
			"delete": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Cart"
				],
				"summary": "Remove a cart item",
				"parameters": [
					{
						"type": "integer",
						"description": "ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "Updated cart",
						"schema": {
							"$ref": "#/definitions/models.CartSummary"
						}
					},
					"400": {
						"description": "Invalid product id",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					}
				}
			}
		},
		"/auth/login": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Auth"
				],
				"summary": "Sign in",
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "models.LoginRequest",
						"name": "credentials",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/models.LoginRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "Signed in",
						"schema": {
							"$ref": "#/definitions/models.AuthResponse"
						}
					},
					"400": {
						"description": "Validation error",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					},
					"429": {
						"description": "Too many attempts",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					}
				}
			}
		},
		"/auth/signup": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Auth"
				],
				"summary": "Create an account",
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "models.SignupRequest",
						"name": "account",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/models.SignupRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Account created",
						"schema": {
							"$ref": "#/definitions/models.AuthResponse"
						}
					},
					"400": {
						"description": "Validation error",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					}
				}
			}
		},
		"/auth/logout": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Auth"
				],
				"summary": "Sign out",
				"responses": {
					"200": {
						"description": "Signed out",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "boolean"
							}
						}
					},
					"500": {
						"description": "Storage error",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					}
				}
			}
		},
		"/auth/me": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Auth"
				],
				"summary": "Current user",
				"responses": {
					"200": {
						"description": "Signed-in user",
						"schema": {
							"$ref": "#/definitions/models.User"
						}
					},
					"401": {
						"description": "Authentication required",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/checkout/quote": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Checkout"
				],
				"summary": "Quote the cart",
				"responses": {
					"200": {
						"description": "Quote",
						"schema": {
							"$ref": "#/definitions/models.CheckoutQuote"
						}
					}
				}
			}
		},
		"/checkout": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Checkout"
				],
				"summary": "Pay for the cart",
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "models.BillingDetails",
						"name": "billing",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/models.BillingDetails"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Purchase completed",
						"schema": {
							"$ref": "#/definitions/models.CheckoutResult"
						}
					},
					"400": {
						"description": "Validation error or empty cart",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					},
					"401": {
						"description": "Authentication required",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					},
					"402": {
						"description": "Payment failed",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/dashboard/purchases": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Dashboard"
				],
				"summary": "List purchases",
				"responses": {
					"200": {
						"description": "Purchases",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.PurchasedProduct"
							}
						}
					},
					"401": {
						"description": "Authentication required",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/dashboard/profile": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Dashboard"
				],
				"summary": "Get the profile",
				"responses": {
					"200": {
						"description": "Profile",
						"schema": {
							"$ref": "#/definitions/models.Profile"
						}
					},
					"401": {
						"description": "Authentication required",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/notifications": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Notifications"
				],
				"summary": "List toasts",
				"responses": {
					"200": {
						"description": "Toasts",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.Toast"
							}
						}
					}
				}
			}
		},
		"/notifications/{id}": {
			"delete": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Notifications"
				],
				"summary": "Dismiss a toast",
				"parameters": [
					{
						"type": "string",
						"description": "ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "Dismissed",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"404": {
						"description": "Notification not found",
						"schema": {
							"$ref": "#/definitions/response.ErrorResponse"
						}
					}
				}
			}
		}
	},
	"definitions": {
		"response.ErrorResponse": {
			"type": "object",
			"properties": {
				"code": {
					"type": "string"
				},
				"message": {
					"type": "string"
				},
				"details": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"fields": {
					"type": "object",
					"additionalProperties": {
						"type": "string"
					}
				}
			}
		},
		"models.Product": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"title": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"long_description": {
					"type": "string"
				},
				"price": {
					"type": "number"
				},
				"original_price": {
					"type": "number"
				},
				"category": {
					"type": "string"
				},
				"rating": {
					"type": "number"
				},
				"review_count": {
					"type": "integer"
				},
				"download_count": {
					"type": "integer"
				},
				"image": {
					"type": "string"
				},
				"tags": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"featured": {
					"type": "boolean"
				}
			}
		},
		"models.CatalogQuery": {
			"type": "object",
			"properties": {
				"search": {
					"type": "string"
				},
				"category": {
					"type": "string"
				},
				"sort": {
					"type": "string",
					"enum": [
						"featured",
						"price-low",
						"price-high",
						"rating",
						"downloads"
					]
				}
			}
		},
		"models.PriceRange": {
			"type": "object",
			"properties": {
				"min": {
					"type": "number"
				},
				"max": {
					"type": "number"
				}
			}
		},
		"handlers.ProductListResponse": {
			"type": "object",
			"properties": {
				"products": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/models.Product"
					}
				},
				"count": {
					"type": "integer"
				},
				"query": {
					"$ref": "#/definitions/models.CatalogQuery"
				},
				"price_range": {
					"$ref": "#/definitions/models.PriceRange"
				}
			}
		},
		"handlers.ProductDetailResponse": {
			"type": "object",
			"properties": {
				"product": {
					"$ref": "#/definitions/models.Product"
				},
				"discount_percent": {
					"type": "integer"
				},
				"related": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/models.Product"
					}
				}
			}
		},
		"models.CategoryCount": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"color": {
					"type": "string"
				},
				"icon": {
					"type": "string"
				},
				"product_count": {
					"type": "integer"
				}
			}
		},
		"models.Testimonial": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"name": {
					"type": "string"
				},
				"role": {
					"type": "string"
				},
				"company": {
					"type": "string"
				},
				"avatar": {
					"type": "string"
				},
				"content": {
					"type": "string"
				},
				"rating": {
					"type": "number"
				}
			}
		},
		"models.FAQ": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"question": {
					"type": "string"
				},
				"answer": {
					"type": "string"
				}
			}
		},
		"models.CartLine": {
			"type": "object",
			"properties": {
				"product": {
					"$ref": "#/definitions/models.Product"
				},
				"quantity": {
					"type": "integer"
				},
				"line_total": {
					"type": "number"
				}
			}
		},
		"models.CartSummary": {
			"type": "object",
			"properties": {
				"lines": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/models.CartLine"
					}
				},
				"total_items": {
					"type": "integer"
				},
				"total_price": {
					"type": "number"
				}
			}
		},
		"models.AddItemRequest": {
			"type": "object",
			"required": [
				"product_id"
			],
			"properties": {
				"product_id": {
					"type": "integer"
				}
			}
		},
		"models.UpdateQuantityRequest": {
			"type": "object",
			"required": [
				"quantity"
			],
			"properties": {
				"quantity": {
					"type": "integer"
				}
			}
		},
		"models.LoginRequest": {
			"type": "object",
			"required": [
				"email",
				"password"
			],
			"properties": {
				"email": {
					"type": "string"
				},
				"password": {
					"type": "string"
				}
			}
		},
		"models.SignupRequest": {
			"type": "object",
			"required": [
				"name",
				"email",
				"password",
				"confirm_password"
			],
			"properties": {
				"name": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"password": {
					"type": "string",
					"minLength": 6
				},
				"confirm_password": {
					"type": "string"
				}
			}
		},
		"models.User": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"avatar": {
					"type": "string"
				}
			}
		},
		"models.AuthResponse": {
			"type": "object",
			"properties": {
				"user": {
					"$ref": "#/definitions/models.User"
				},
				"token": {
					"type": "string"
				}
			}
		},
		"models.BillingDetails": {
			"type": "object",
			"required": [
				"email",
				"first_name",
				"last_name",
				"address",
				"city",
				"zip_code"
			],
			"properties": {
				"email": {
					"type": "string"
				},
				"first_name": {
					"type": "string"
				},
				"last_name": {
					"type": "string"
				},
				"address": {
					"type": "string"
				},
				"city": {
					"type": "string"
				},
				"zip_code": {
					"type": "string"
				},
				"country": {
					"type": "string"
				}
			}
		},
		"models.CheckoutSummary": {
			"type": "object",
			"properties": {
				"subtotal": {
					"type": "number"
				},
				"tax_rate": {
					"type": "number"
				},
				"tax": {
					"type": "number"
				},
				"total": {
					"type": "number"
				}
			}
		},
		"models.CheckoutQuote": {
			"type": "object",
			"properties": {
				"cart": {
					"$ref": "#/definitions/models.CartSummary"
				},
				"summary": {
					"$ref": "#/definitions/models.CheckoutSummary"
				}
			}
		},
		"models.Purchase": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"user_id": {
					"type": "string"
				},
				"product_id": {
					"type": "integer"
				},
				"quantity": {
					"type": "integer"
				},
				"unit_price": {
					"type": "number"
				},
				"payment_ref": {
					"type": "string"
				},
				"status": {
					"type": "string"
				},
				"download_url": {
					"type": "string"
				},
				"purchased_at": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"models.PurchasedProduct": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"user_id": {
					"type": "string"
				},
				"product_id": {
					"type": "integer"
				},
				"quantity": {
					"type": "integer"
				},
				"unit_price": {
					"type": "number"
				},
				"payment_ref": {
					"type": "string"
				},
				"status": {
					"type": "string"
				},
				"download_url": {
					"type": "string"
				},
				"purchased_at": {
					"type": "string",
					"format": "date-time"
				},
				"product": {
					"$ref": "#/definitions/models.Product"
				}
			}
		},
		"models.CheckoutResult": {
			"type": "object",
			"properties": {
				"summary": {
					"$ref": "#/definitions/models.CheckoutSummary"
				},
				"payment_ref": {
					"type": "string"
				},
				"purchases": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/models.Purchase"
					}
				},
				"message": {
					"type": "string"
				}
			}
		},
		"models.Profile": {
			"type": "object",
			"properties": {
				"user": {
					"$ref": "#/definitions/models.User"
				},
				"purchase_count": {
					"type": "integer"
				},
				"total_spent": {
					"type": "number"
				},
				"products_owned": {
					"type": "integer"
				}
			}
		},
		"models.Toast": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"message": {
					"type": "string"
				},
				"severity": {
					"type": "string",
					"enum": [
						"info",
						"success",
						"warning",
						"error"
					]
				},
				"created_at": {
					"type": "string",
					"format": "date-time"
				},
				"expires_at": {
					"type": "string",
					"format": "date-time"
				}
			}
		}
	},
	"securityDefinitions": {
		"BearerAuth": {
			"description": "Type \"Bearer\" followed by a space and the session token.",
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
	Title:            "Digital Storefront API",
	Description:      "Catalog browsing, session carts, mocked sign-in and checkout for digital goods. Every request belongs to the session named by the X-Session-ID header.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
