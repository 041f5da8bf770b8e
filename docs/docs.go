// Package docs holds the OpenAPI document served at /swagger.
// Regenerate with: swag init -g cmd/server/main.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "PsicoMapa Suporte",
            "email": "suporte@psicomapa.com.br"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/assessments/{id}/action-items": {
            "post": {
                "summary": "Add an action to the assessment's plan",
                "tags": [
                    "action-items"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Assessment ID (UUID)",
                        "type": "string"
                    },
                    {
                        "name": "item",
                        "in": "body",
                        "required": true,
                        "description": "Action item",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "400": {
                        "description": "Invalid action item",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "404": {
                        "description": "Assessment not found",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            },
            "get": {
                "summary": "The action plan of an assessment",
                "tags": [
                    "action-items"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Assessment ID (UUID)",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array"
                        }
                    }
                }
            }
        },
        "/api/v1/action-items/{id}": {
            "patch": {
                "summary": "Change an action item",
                "tags": [
                    "action-items"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Action item ID (UUID)",
                        "type": "string"
                    },
                    {
                        "name": "item",
                        "in": "body",
                        "required": true,
                        "description": "Fields to change",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            },
            "delete": {
                "summary": "Remove an action item",
                "tags": [
                    "action-items"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Action item ID (UUID)",
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "Action item removed"
                    }
                }
            }
        },
        "/api/v1/assessments/{id}/analytics": {
            "get": {
                "summary": "Aggregated risk indicators of an assessment",
                "tags": [
                    "analytics"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Assessment ID (UUID)",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "404": {
                        "description": "Assessment not found",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            }
        },
        "/api/v1/assessments/{id}/report.xlsx": {
            "get": {
                "summary": "Spreadsheet report",
                "tags": [
                    "analytics"
                ],
                "produces": [
                    "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Assessment ID (UUID)",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "404": {
                        "description": "Assessment not found",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            }
        },
        "/api/v1/assessments/{id}/report.pdf": {
            "get": {
                "summary": "NR-1 PDF report",
                "tags": [
                    "analytics"
                ],
                "produces": [
                    "application/pdf"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Assessment ID (UUID)",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "404": {
                        "description": "Assessment not found",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            }
        },
        "/api/v1/assessments": {
            "post": {
                "summary": "Create a draft assessment",
                "tags": [
                    "assessments"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "organization_id",
                        "in": "query",
                        "required": false,
                        "description": "Organization (platform admins only)",
                        "type": "string"
                    },
                    {
                        "name": "assessment",
                        "in": "body",
                        "required": true,
                        "description": "Assessment data",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "400": {
                        "description": "Invalid assessment",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "404": {
                        "description": "Questionnaire not found",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            },
            "get": {
                "summary": "List the organization's assessments",
                "tags": [
                    "assessments"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "organization_id",
                        "in": "query",
                        "required": false,
                        "description": "Organization (platform admins only)",
                        "type": "string"
                    },
                    {
                        "name": "status",
                        "in": "query",
                        "required": false,
                        "description": "draft, active or closed",
                        "type": "string"
                    },
                    {
                        "name": "page",
                        "in": "query",
                        "required": false,
                        "description": "Page number",
                        "type": "integer"
                    },
                    {
                        "name": "page_size",
                        "in": "query",
                        "required": false,
                        "description": "Number of items per page",
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "400": {
                        "description": "Unknown status",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            }
        },
        "/api/v1/assessments/{id}": {
            "get": {
                "summary": "Get an assessment",
                "tags": [
                    "assessments"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Assessment ID (UUID)",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "404": {
                        "description": "Assessment not found",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            },
            "put": {
                "summary": "Update a draft assessment",
                "tags": [
                    "assessments"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Assessment ID (UUID)",
                        "type": "string"
                    },
                    {
                        "name": "assessment",
                        "in": "body",
                        "required": true,
                        "description": "Assessment data",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "400": {
                        "description": "Assessment is not a draft",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            },
            "delete": {
                "summary": "Delete a draft assessment",
                "tags": [
                    "assessments"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Assessment ID (UUID)",
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "Assessment deleted"
                    },
                    "400": {
                        "description": "Assessment is not a draft",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            }
        },
        "/api/v1/assessments/{id}/activate": {
            "post": {
                "summary": "Open an assessment for responses",
                "description": "Requires an active subscription and a free slot in the plan",
                "tags": [
                    "assessments"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Assessment ID (UUID)",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "400": {
                        "description": "Invalid status transition",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "402": {
                        "description": "Subscription required or plan limit reached",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            }
        },
        "/api/v1/assessments/{id}/close": {
            "post": {
                "summary": "Stop collecting responses",
                "tags": [
                    "assessments"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Assessment ID (UUID)",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "400": {
                        "description": "Invalid status transition",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            }
        },
        "/api/v1/plans": {
            "get": {
                "summary": "Plan catalogue",
                "tags": [
                    "billing"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array"
                        }
                    }
                }
            }
        },
        "/api/v1/billing/checkout": {
            "post": {
                "summary": "Start a subscription checkout",
                "description": "accept_terms must be true",
                "tags": [
                    "billing"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "checkout",
                        "in": "body",
                        "required": true,
                        "description": "Plan and terms acceptance",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "400": {
                        "description": "Terms not accepted",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "404": {
                        "description": "Plan not found",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "503": {
                        "description": "Stripe not configured",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            }
        },
        "/api/v1/billing/subscription": {
            "get": {
                "summary": "Billing state of the organization",
                "tags": [
                    "billing"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "organization_id",
                        "in": "query",
                        "required": false,
                        "description": "Organization (platform admins only)",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "404": {
                        "description": "No subscription",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            }
        },
        "/api/webhooks/stripe": {
            "post": {
                "summary": "Stripe webhook receiver",
                "description": "Verifies the Stripe-Signature header. Redeliveries are acknowledged with duplicate=true.",
                "tags": [
                    "billing"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "400": {
                        "description": "Invalid signature",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "500": {
                        "description": "Processing failed, Stripe will retry",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            }
        },
        "/api/dev/seed-responses": {
            "post": {
                "summary": "Generate random responses for an assessment",
                "tags": [
                    "dev"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "seed",
                        "in": "body",
                        "required": true,
                        "description": "Assessment and count",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            }
        },
        "/health": {
            "get": {
                "summary": "Health check",
                "description": "Get the overall health status of the application including database connectivity",
                "tags": [
                    "health"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "Application is healthy",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "503": {
                        "description": "Application is unhealthy",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            }
        },
        "/health/ready": {
            "get": {
                "summary": "Readiness check",
                "description": "Check if the application is ready to serve requests",
                "tags": [
                    "health"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "Application is ready",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "503": {
                        "description": "Application is not ready",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            }
        },
        "/health/live": {
            "get": {
                "summary": "Liveness check",
                "description": "Check if the application is alive and responding",
                "tags": [
                    "health"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "Application is alive",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            }
        },
        "/api/v1/organizations": {
            "post": {
                "summary": "Create a new organization",
                "description": "Onboard a tenant. Platform admins only.",
                "tags": [
                    "organizations"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "organization",
                        "in": "body",
                        "required": true,
                        "description": "Organization data",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Successfully created organization",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "400": {
                        "description": "Invalid request body",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "403": {
                        "description": "Insufficient permissions",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "409": {
                        "description": "Organization already exists",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            },
            "get": {
                "summary": "List organizations",
                "description": "Platform admins see every tenant, everyone else only their own",
                "tags": [
                    "organizations"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "q",
                        "in": "query",
                        "required": false,
                        "description": "Search by name, slug or CNPJ",
                        "type": "string"
                    },
                    {
                        "name": "page",
                        "in": "query",
                        "required": false,
                        "description": "Page number",
                        "type": "integer"
                    },
                    {
                        "name": "page_size",
                        "in": "query",
                        "required": false,
                        "description": "Number of items per page",
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Successfully retrieved organizations",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            }
        },
        "/api/v1/organizations/{id}": {
            "get": {
                "summary": "Get organization by ID",
                "tags": [
                    "organizations"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Organization ID (UUID)",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Successfully retrieved organization",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "400": {
                        "description": "Invalid organization ID",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "404": {
                        "description": "Organization not found",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            },
            "put": {
                "summary": "Update organization",
                "tags": [
                    "organizations"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Organization ID (UUID)",
                        "type": "string"
                    },
                    {
                        "name": "organization",
                        "in": "body",
                        "required": true,
                        "description": "Updated organization data",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Successfully updated organization",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "404": {
                        "description": "Organization not found",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "409": {
                        "description": "CNPJ already in use",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            },
            "delete": {
                "summary": "Delete organization",
                "tags": [
                    "organizations"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Organization ID (UUID)",
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "Successfully deleted organization"
                    },
                    "403": {
                        "description": "Insufficient permissions",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "404": {
                        "description": "Organization not found",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            }
        },
        "/api/v1/organizations/by-slug/{slug}": {
            "get": {
                "summary": "Get organization by slug",
                "tags": [
                    "organizations"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "slug",
                        "in": "path",
                        "required": true,
                        "description": "Organization slug",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Successfully retrieved organization",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "404": {
                        "description": "Organization not found",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            }
        },
        "/api/v1/me": {
            "get": {
                "summary": "Current user",
                "description": "Returns the signed-in profile, its organization and permission flags",
                "tags": [
                    "profiles"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "401": {
                        "description": "Authentication required",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            }
        },
        "/api/v1/profiles": {
            "post": {
                "summary": "Invite a user",
                "description": "Creates the profile for an auth user and emails the invitation",
                "tags": [
                    "profiles"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "profile",
                        "in": "body",
                        "required": true,
                        "description": "Profile data",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "400": {
                        "description": "Invalid request body",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "403": {
                        "description": "Insufficient permissions",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "409": {
                        "description": "Email already registered",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            },
            "get": {
                "summary": "List the users of an organization",
                "tags": [
                    "profiles"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "organization_id",
                        "in": "query",
                        "required": false,
                        "description": "Organization (platform admins only)",
                        "type": "string"
                    },
                    {
                        "name": "page",
                        "in": "query",
                        "required": false,
                        "description": "Page number",
                        "type": "integer"
                    },
                    {
                        "name": "page_size",
                        "in": "query",
                        "required": false,
                        "description": "Number of items per page",
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            }
        },
        "/api/v1/profiles/{id}": {
            "get": {
                "summary": "Get a profile",
                "tags": [
                    "profiles"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Profile ID (UUID)",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "404": {
                        "description": "Profile not found",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            },
            "delete": {
                "summary": "Remove a user",
                "tags": [
                    "profiles"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Profile ID (UUID)",
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "Profile removed"
                    }
                }
            }
        },
        "/api/v1/profiles/{id}/role": {
            "put": {
                "summary": "Change a user's role",
                "tags": [
                    "profiles"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Profile ID (UUID)",
                        "type": "string"
                    },
                    {
                        "name": "role",
                        "in": "body",
                        "required": true,
                        "description": "New role",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "400": {
                        "description": "Invalid role",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "403": {
                        "description": "Insufficient permissions",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            }
        },
        "/api/v1/profiles/{id}/deactivate": {
            "post": {
                "summary": "Block a user",
                "tags": [
                    "profiles"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Profile ID (UUID)",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            }
        },
        "/api/public/assessments/{token}": {
            "get": {
                "summary": "Survey behind a public link",
                "description": "Returns the questions only while the assessment is open",
                "tags": [
                    "public"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "token",
                        "in": "path",
                        "required": true,
                        "description": "Public token",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "400": {
                        "description": "Assessment is not accepting responses",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "404": {
                        "description": "Assessment not found",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            }
        },
        "/api/public/assessments/{token}/responses": {
            "post": {
                "summary": "Submit an anonymous response",
                "tags": [
                    "public"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "token",
                        "in": "path",
                        "required": true,
                        "description": "Public token",
                        "type": "string"
                    },
                    {
                        "name": "response",
                        "in": "body",
                        "required": true,
                        "description": "Answers",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "400": {
                        "description": "Incomplete or invalid answers",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "402": {
                        "description": "Plan respondent limit reached",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "404": {
                        "description": "Assessment not found",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "429": {
                        "description": "Too many submissions",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            }
        },
        "/api/v1/questionnaires": {
            "post": {
                "summary": "Create a questionnaire with its questions",
                "tags": [
                    "questionnaires"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "questionnaire",
                        "in": "body",
                        "required": true,
                        "description": "Questionnaire data",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "400": {
                        "description": "Invalid questionnaire",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "409": {
                        "description": "Name already used",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            },
            "get": {
                "summary": "List the organization's questionnaires and the global templates",
                "tags": [
                    "questionnaires"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "page",
                        "in": "query",
                        "required": false,
                        "description": "Page number",
                        "type": "integer"
                    },
                    {
                        "name": "page_size",
                        "in": "query",
                        "required": false,
                        "description": "Number of items per page",
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            }
        },
        "/api/v1/questionnaires/{id}": {
            "get": {
                "summary": "Get a questionnaire with its questions",
                "tags": [
                    "questionnaires"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Questionnaire ID (UUID)",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "404": {
                        "description": "Questionnaire not found",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            },
            "put": {
                "summary": "Update questionnaire metadata",
                "tags": [
                    "questionnaires"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Questionnaire ID (UUID)",
                        "type": "string"
                    },
                    {
                        "name": "questionnaire",
                        "in": "body",
                        "required": true,
                        "description": "Metadata",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            },
            "delete": {
                "summary": "Delete a questionnaire",
                "description": "Refused while an assessment uses it",
                "tags": [
                    "questionnaires"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Questionnaire ID (UUID)",
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "Questionnaire deleted"
                    },
                    "400": {
                        "description": "Questionnaire in use",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            }
        },
        "/api/v1/questionnaires/{id}/clone": {
            "post": {
                "summary": "Copy a questionnaire or template into the organization",
                "tags": [
                    "questionnaires"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Questionnaire ID (UUID)",
                        "type": "string"
                    },
                    {
                        "name": "clone",
                        "in": "body",
                        "required": false,
                        "description": "Optional new name",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and the Supabase session JWT.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:7008",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "PsicoMapa API",
	Description:      "Backend API for PsicoMapa: NR-1 psychosocial risk and organizational climate surveys, analytics, reports and billing.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
