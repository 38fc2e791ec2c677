// Package api holds the OpenAPI document served under /docs.
//
// The document mirrors the swag annotations of the handlers. Regenerate it
// with "swag init -o api" after changing them.
package api

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
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "paths": {
        "/healthz": {
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "General"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            },
            "get": {
                "description": "Returns the application health and, if not healthy, an error",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "General"
                ],
                "summary": "Get health",
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    }
                }
            }
        },
        "/v1/advisor/analysis": {
            "post": {
                "description": "Analyzes the finances of the user with a language model. The 50 most recent transactions are used.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Advisor"
                ],
                "summary": "Financial analysis",
                "parameters": [
                    {
                        "name": "input",
                        "in": "body",
                        "required": false,
                        "description": "Input",
                        "schema": {
                            "$ref": "#/definitions/v1.AnalysisInput"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.AnalysisResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.AnalysisResponse"
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
        "/v1/auth/login": {
            "post": {
                "description": "Returns a token for the credentials",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Auth"
                ],
                "summary": "Login",
                "parameters": [
                    {
                        "name": "credentials",
                        "in": "body",
                        "required": true,
                        "description": "Credentials",
                        "schema": {
                            "$ref": "#/definitions/v1.LoginInput"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.LoginResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.LoginResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/v1.LoginResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.LoginResponse"
                        }
                    }
                }
            }
        },
        "/v1/auth/register": {
            "post": {
                "description": "Creates a new user",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Auth"
                ],
                "summary": "Register",
                "parameters": [
                    {
                        "name": "user",
                        "in": "body",
                        "required": true,
                        "description": "User",
                        "schema": {
                            "$ref": "#/definitions/v1.RegisterInput"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.UserResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.UserResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/v1.UserResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.UserResponse"
                        }
                    }
                }
            }
        },
        "/v1/calculators/compound-interest": {
            "post": {
                "description": "Projects regular contributions with compound interest. In retirement mode, the period runs from the current age to the retirement age.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Calculators"
                ],
                "summary": "Compound interest",
                "parameters": [
                    {
                        "name": "input",
                        "in": "body",
                        "required": true,
                        "description": "Projection",
                        "schema": {
                            "$ref": "#/definitions/calculator.Input"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.CompoundResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.CompoundResponse"
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
        "/v1/category-rules": {
            "get": {
                "description": "Returns the category rules of the user, ordered by priority",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Category Rules"
                ],
                "summary": "Get category rules",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryRuleListResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryRuleListResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "post": {
                "description": "Creates a category rule. It is applied to new transactions without a category.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Category Rules"
                ],
                "summary": "Create category rule",
                "parameters": [
                    {
                        "name": "rule",
                        "in": "body",
                        "required": true,
                        "description": "Category rule",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryRuleEditable"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryRuleResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryRuleResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryRuleResponse"
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
        "/v1/category-rules/{id}": {
            "get": {
                "description": "Returns a specific category rule",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Category Rules"
                ],
                "summary": "Get category rule",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryRuleResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryRuleResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryRuleResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "patch": {
                "description": "Updates a category rule. Only values to be updated need to be specified.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Category Rules"
                ],
                "summary": "Update category rule",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "type": "string"
                    },
                    {
                        "name": "rule",
                        "in": "body",
                        "required": true,
                        "description": "Category rule",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryRuleEditable"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryRuleResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryRuleResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryRuleResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryRuleResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "delete": {
                "description": "Deletes a category rule",
                "tags": [
                    "Category Rules"
                ],
                "summary": "Delete category rule",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
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
        "/v1/gamification": {
            "get": {
                "description": "Returns the badges, the XP and the level of the user",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Gamification"
                ],
                "summary": "Get gamification",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.GamificationResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.GamificationResponse"
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
        "/v1/gamification/celebration": {
            "get": {
                "description": "Returns the oldest badge that was unlocked but not celebrated yet and removes it from the queue",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Gamification"
                ],
                "summary": "Pop celebration",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.CelebrationResponse"
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
        "/v1/gamification/learning-xp": {
            "post": {
                "description": "Adds XP to the learning XP and to the total. Both never go below zero.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Gamification"
                ],
                "summary": "Earn learning XP",
                "parameters": [
                    {
                        "name": "xp",
                        "in": "body",
                        "required": true,
                        "description": "XP",
                        "schema": {
                            "$ref": "#/definitions/v1.XPInput"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.GamificationResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.GamificationResponse"
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
        "/v1/gamification/xp": {
            "post": {
                "description": "Adds XP to the total. The total never goes below zero.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Gamification"
                ],
                "summary": "Earn XP",
                "parameters": [
                    {
                        "name": "xp",
                        "in": "body",
                        "required": true,
                        "description": "XP",
                        "schema": {
                            "$ref": "#/definitions/v1.XPInput"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.GamificationResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.GamificationResponse"
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
        "/v1/goals": {
            "post": {
                "description": "Creates goals from the list of submitted goal data. The response code is the highest response code number that a single goal creation would have caused. If it is not equal to 201, at least one goal has an error.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Goals"
                ],
                "summary": "Create goals",
                "parameters": [
                    {
                        "name": "goals",
                        "in": "body",
                        "required": true,
                        "description": "Goals",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/v1.GoalEditable"
                            }
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.GoalCreateResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.GoalCreateResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.GoalCreateResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "get": {
                "description": "Returns the goals of the user in the order they were created",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Goals"
                ],
                "summary": "Get goals",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.GoalListResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.GoalListResponse"
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
        "/v1/goals/{id}": {
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Goals"
                ],
                "summary": "Allowed HTTP verbs",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "get": {
                "description": "Returns a specific goal",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Goals"
                ],
                "summary": "Get goal",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.GoalResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.GoalResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.GoalResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "patch": {
                "description": "Update an existing goal. Only values to be updated need to be specified.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Goals"
                ],
                "summary": "Update goal",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "type": "string"
                    },
                    {
                        "name": "goal",
                        "in": "body",
                        "required": true,
                        "description": "Goal",
                        "schema": {
                            "$ref": "#/definitions/v1.GoalEditable"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.GoalResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.GoalResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.GoalResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.GoalResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "delete": {
                "description": "Deletes a goal",
                "tags": [
                    "Goals"
                ],
                "summary": "Delete goal",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
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
        "/v1/goals/{id}/contributions": {
            "post": {
                "description": "Adds an amount to the current amount of the goal",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Goals"
                ],
                "summary": "Contribute to goal",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "type": "string"
                    },
                    {
                        "name": "contribution",
                        "in": "body",
                        "required": true,
                        "description": "Contribution",
                        "schema": {
                            "$ref": "#/definitions/v1.ContributionInput"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.GoalResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.GoalResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.GoalResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.GoalResponse"
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
        "/v1/income-sources": {
            "get": {
                "description": "Returns the income sources of the user",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Income Sources"
                ],
                "summary": "Get income sources",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.IncomeSourceListResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "post": {
                "description": "Creates an income source. The color defaults to green.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Income Sources"
                ],
                "summary": "Create income source",
                "parameters": [
                    {
                        "name": "incomeSource",
                        "in": "body",
                        "required": true,
                        "description": "Income source",
                        "schema": {
                            "$ref": "#/definitions/v1.IncomeSourceEditable"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.IncomeSourceResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.IncomeSourceResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.IncomeSourceResponse"
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
        "/v1/income-sources/{id}": {
            "patch": {
                "description": "Updates an income source. Only values to be updated need to be specified.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Income Sources"
                ],
                "summary": "Update income source",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "type": "string"
                    },
                    {
                        "name": "incomeSource",
                        "in": "body",
                        "required": true,
                        "description": "Income source",
                        "schema": {
                            "$ref": "#/definitions/v1.IncomeSourceEditable"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.IncomeSourceResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.IncomeSourceResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.IncomeSourceResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.IncomeSourceResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "delete": {
                "description": "Deletes an income source",
                "tags": [
                    "Income Sources"
                ],
                "summary": "Delete income source",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
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
        "/v1/lessons": {
            "get": {
                "description": "Returns all lessons and whether the user completed them",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Learning"
                ],
                "summary": "Get lessons",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.LessonListResponse"
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
        "/v1/lessons/{id}/answers": {
            "post": {
                "description": "Grades the answer to a quiz question. Correct answers earn 50 learning XP, wrong answers cost 20.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Learning"
                ],
                "summary": "Answer question",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ID of the lesson",
                        "type": "string"
                    },
                    {
                        "name": "answer",
                        "in": "body",
                        "required": true,
                        "description": "Answer",
                        "schema": {
                            "$ref": "#/definitions/v1.AnswerInput"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.AnswerResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.AnswerResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.AnswerResponse"
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
        "/v1/notifications": {
            "get": {
                "description": "Returns the notifications of the session, newest first",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Gamification"
                ],
                "summary": "Get notifications",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.NotificationListResponse"
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
        "/v1/projects": {
            "get": {
                "description": "Returns the projects of the user",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Projects"
                ],
                "summary": "Get projects",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.ProjectListResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "post": {
                "description": "Creates a project",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Projects"
                ],
                "summary": "Create project",
                "parameters": [
                    {
                        "name": "project",
                        "in": "body",
                        "required": true,
                        "description": "Project",
                        "schema": {
                            "$ref": "#/definitions/v1.ProjectEditable"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.ProjectResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.ProjectResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.ProjectResponse"
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
        "/v1/rates/bitcoin": {
            "get": {
                "description": "Returns the bitcoin price in reais and its change over 24 hours",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Rates"
                ],
                "summary": "Bitcoin price",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.QuoteResponse"
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {
                            "$ref": "#/definitions/v1.QuoteResponse"
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
        "/v1/rates/convert": {
            "get": {
                "description": "Converts an amount with the current exchange rate",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Rates"
                ],
                "summary": "Convert currency",
                "parameters": [
                    {
                        "name": "amount",
                        "in": "query",
                        "required": false,
                        "description": "Amount, defaults to 1",
                        "type": "string"
                    },
                    {
                        "name": "from",
                        "in": "query",
                        "required": true,
                        "description": "Source currency",
                        "type": "string"
                    },
                    {
                        "name": "to",
                        "in": "query",
                        "required": true,
                        "description": "Target currency",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.ConversionResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.ConversionResponse"
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {
                            "$ref": "#/definitions/v1.ConversionResponse"
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
        "/v1/shopping-list": {
            "get": {
                "description": "Returns the items of the shopping list with their total",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Shopping List"
                ],
                "summary": "Get shopping list",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.ShoppingListResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "post": {
                "description": "Adds an item to the shopping list",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Shopping List"
                ],
                "summary": "Add item",
                "parameters": [
                    {
                        "name": "item",
                        "in": "body",
                        "required": true,
                        "description": "Item",
                        "schema": {
                            "$ref": "#/definitions/v1.ShoppingItemEditable"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.ShoppingItemResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.ShoppingItemResponse"
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
        "/v1/shopping-list/conclude": {
            "post": {
                "description": "Records the total of the list as an expense, awards purchase XP and clears the list",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Shopping List"
                ],
                "summary": "Conclude shopping",
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.ShoppingConcludeResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.ShoppingConcludeResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.ShoppingConcludeResponse"
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
        "/v1/shopping-list/email": {
            "post": {
                "description": "Sends the shopping list by email",
                "consumes": [
                    "application/json"
                ],
                "tags": [
                    "Shopping List"
                ],
                "summary": "Email shopping list",
                "parameters": [
                    {
                        "name": "email",
                        "in": "body",
                        "required": true,
                        "description": "Recipient",
                        "schema": {
                            "$ref": "#/definitions/v1.ShoppingEmailInput"
                        }
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
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
        "/v1/shopping-list/share": {
            "get": {
                "description": "Returns the list as a message and a link to share it on WhatsApp",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Shopping List"
                ],
                "summary": "Share shopping list",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.ShoppingShareResponse"
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
        "/v1/shopping-list/{id}": {
            "patch": {
                "description": "Updates an item. Only values to be updated need to be specified.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Shopping List"
                ],
                "summary": "Update item",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "type": "string"
                    },
                    {
                        "name": "item",
                        "in": "body",
                        "required": true,
                        "description": "Item",
                        "schema": {
                            "$ref": "#/definitions/v1.ShoppingItemEditable"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.ShoppingItemResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.ShoppingItemResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.ShoppingItemResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "delete": {
                "description": "Removes an item from the shopping list",
                "tags": [
                    "Shopping List"
                ],
                "summary": "Delete item",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
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
        "/v1/summary": {
            "get": {
                "description": "Returns income, expenses and investments of a month with the sums per day",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Summary"
                ],
                "summary": "Get month summary",
                "parameters": [
                    {
                        "name": "month",
                        "in": "query",
                        "required": false,
                        "description": "The month in YYYY-MM format, defaults to the current month",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.SummaryResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.SummaryResponse"
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
        "/v1/transactions": {
            "post": {
                "description": "Creates transactions. Investments are added to the first goal.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Transactions"
                ],
                "summary": "Create transactions",
                "parameters": [
                    {
                        "name": "transactions",
                        "in": "body",
                        "required": true,
                        "description": "Transactions",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/v1.TransactionEditable"
                            }
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionCreateResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionCreateResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionCreateResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "get": {
                "description": "Returns the transactions of the user, newest first",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Transactions"
                ],
                "summary": "Get transactions",
                "parameters": [
                    {
                        "name": "month",
                        "in": "query",
                        "required": false,
                        "description": "Transactions of this month, YYYY-MM",
                        "type": "string"
                    },
                    {
                        "name": "type",
                        "in": "query",
                        "required": false,
                        "description": "Filter by type",
                        "type": "string"
                    },
                    {
                        "name": "category",
                        "in": "query",
                        "required": false,
                        "description": "Filter by category",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionListResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionListResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionListResponse"
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
        "/v1/transactions/{id}": {
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Transactions"
                ],
                "summary": "Allowed HTTP verbs",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "get": {
                "description": "Returns a specific transaction",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Transactions"
                ],
                "summary": "Get transaction",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "patch": {
                "description": "Updates an existing transaction. Only values to be updated need to be specified.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Transactions"
                ],
                "summary": "Update transaction",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "type": "string"
                    },
                    {
                        "name": "transaction",
                        "in": "body",
                        "required": true,
                        "description": "Transaction",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionEditable"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "delete": {
                "description": "Deletes a transaction",
                "tags": [
                    "Transactions"
                ],
                "summary": "Delete transaction",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        }
    },
    "definitions": {
        "advisor.Analysis": {
            "type": "object",
            "properties": {
                "summary": {
                    "type": "string",
                    "example": "Your finances are stable."
                },
                "healthScore": {
                    "type": "integer",
                    "example": 72
                },
                "financialStatus": {
                    "type": "string",
                    "example": "Good"
                },
                "trends": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/advisor.Trend"
                    }
                },
                "recommendations": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/advisor.Recommendation"
                    }
                },
                "risks": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/advisor.Risk"
                    }
                }
            }
        },
        "advisor.Recommendation": {
            "type": "object",
            "properties": {
                "title": {
                    "type": "string",
                    "example": "Build an emergency fund"
                },
                "description": {
                    "type": "string",
                    "example": "Put aside 10% of your income every month."
                },
                "difficulty": {
                    "type": "string",
                    "example": "Easy"
                }
            }
        },
        "advisor.Risk": {
            "type": "object",
            "properties": {
                "severity": {
                    "type": "string",
                    "example": "medium"
                },
                "description": {
                    "type": "string",
                    "example": "No reserve for unexpected expenses."
                }
            }
        },
        "advisor.Trend": {
            "type": "object",
            "properties": {
                "icon": {
                    "type": "string",
                    "example": "up"
                },
                "text": {
                    "type": "string",
                    "example": "Spending on restaurants went up"
                },
                "type": {
                    "type": "string",
                    "example": "negative"
                }
            }
        },
        "auth.Token": {
            "type": "object",
            "properties": {
                "token": {
                    "type": "string",
                    "example": "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."
                },
                "expiresAt": {
                    "type": "string",
                    "format": "date-time",
                    "example": "2024-07-04T12:00:00Z"
                },
                "user": {
                    "$ref": "#/definitions/models.User"
                }
            }
        },
        "calculator.Input": {
            "type": "object",
            "properties": {
                "mode": {
                    "type": "string",
                    "example": "simple"
                },
                "initial": {
                    "type": "number",
                    "example": 1000
                },
                "contribution": {
                    "type": "number",
                    "example": 500
                },
                "frequency": {
                    "type": "string",
                    "example": "monthly"
                },
                "annualRate": {
                    "type": "number",
                    "example": 10
                },
                "period": {
                    "type": "integer",
                    "example": 10
                },
                "periodUnit": {
                    "type": "string",
                    "example": "years"
                },
                "currentAge": {
                    "type": "integer",
                    "example": 30
                },
                "retirementAge": {
                    "type": "integer",
                    "example": 65
                },
                "lifeExpectancy": {
                    "type": "integer",
                    "example": 90
                }
            }
        },
        "calculator.Point": {
            "type": "object",
            "properties": {
                "label": {
                    "type": "string",
                    "example": "Year 1"
                },
                "month": {
                    "type": "integer",
                    "example": 12
                },
                "balance": {
                    "type": "number",
                    "example": 7941.36
                },
                "invested": {
                    "type": "number",
                    "example": 7000
                },
                "interest": {
                    "type": "number",
                    "example": 941.36
                }
            }
        },
        "calculator.Result": {
            "type": "object",
            "properties": {
                "points": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/calculator.Point"
                    }
                },
                "finalBalance": {
                    "type": "number",
                    "example": 104710.08
                },
                "totalInvested": {
                    "type": "number",
                    "example": 61000
                },
                "totalInterest": {
                    "type": "number",
                    "example": 43710.08
                },
                "monthlyPassiveIncome": {
                    "type": "number",
                    "example": 872.58
                },
                "safeWithdrawal": {
                    "type": "number",
                    "example": 951.52
                },
                "years": {
                    "type": "number",
                    "example": 10
                }
            }
        },
        "gamification.Badge": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "example": "first_goal"
                },
                "title": {
                    "type": "string",
                    "example": "Dreamer"
                },
                "description": {
                    "type": "string",
                    "example": "Created the first financial goal."
                },
                "icon": {
                    "type": "string",
                    "example": "target"
                },
                "color": {
                    "type": "string",
                    "example": "bronze"
                },
                "unlocked": {
                    "type": "boolean",
                    "example": true
                },
                "unlockedAt": {
                    "type": "string",
                    "format": "date-time",
                    "example": "2024-04-02T19:28:44.491514Z"
                },
                "xpReward": {
                    "type": "integer",
                    "example": 100
                }
            }
        },
        "httputil.HTTPError": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string",
                    "example": "the request body must not be empty"
                }
            }
        },
        "learning.Question": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "example": "q1"
                },
                "text": {
                    "type": "string",
                    "example": "What is the definition of passive income?"
                },
                "options": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "models.CategoryRule": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "format": "uuid",
                    "description": "UUID for the resource",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "createdAt": {
                    "type": "string",
                    "format": "date-time",
                    "description": "Time the resource was created",
                    "example": "2022-04-02T19:28:44.491514Z"
                },
                "updatedAt": {
                    "type": "string",
                    "format": "date-time",
                    "description": "Last time the resource was updated",
                    "example": "2022-04-17T20:14:01.048145Z"
                },
                "priority": {
                    "type": "integer"
                },
                "match": {
                    "type": "string"
                },
                "category": {
                    "type": "string"
                }
            }
        },
        "models.Project": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "format": "uuid",
                    "description": "UUID for the resource",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "createdAt": {
                    "type": "string",
                    "format": "date-time",
                    "description": "Time the resource was created",
                    "example": "2022-04-02T19:28:44.491514Z"
                },
                "updatedAt": {
                    "type": "string",
                    "format": "date-time",
                    "description": "Last time the resource was updated",
                    "example": "2022-04-17T20:14:01.048145Z"
                },
                "name": {
                    "type": "string"
                }
            }
        },
        "models.User": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "format": "uuid",
                    "description": "UUID for the resource",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "createdAt": {
                    "type": "string",
                    "format": "date-time",
                    "description": "Time the resource was created",
                    "example": "2022-04-02T19:28:44.491514Z"
                },
                "updatedAt": {
                    "type": "string",
                    "format": "date-time",
                    "description": "Last time the resource was updated",
                    "example": "2022-04-17T20:14:01.048145Z"
                },
                "email": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "metadata": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "object"
                    }
                }
            }
        },
        "rates.Conversion": {
            "type": "object",
            "properties": {
                "from": {
                    "type": "string",
                    "example": "USD"
                },
                "to": {
                    "type": "string",
                    "example": "BRL"
                },
                "amount": {
                    "type": "number",
                    "example": 100
                },
                "rate": {
                    "type": "number",
                    "example": 5.4321
                },
                "result": {
                    "type": "number",
                    "example": 543.21
                }
            }
        },
        "rates.Quote": {
            "type": "object",
            "properties": {
                "price": {
                    "type": "number",
                    "example": 352310.12
                },
                "change24h": {
                    "type": "number",
                    "example": -1.84
                },
                "updatedAt": {
                    "type": "string",
                    "format": "date-time",
                    "example": "2024-07-03T12:00:00Z"
                }
            }
        },
        "session.Answer": {
            "type": "object",
            "properties": {
                "correct": {
                    "type": "boolean",
                    "example": true
                },
                "correctOption": {
                    "type": "integer",
                    "example": 2
                },
                "xp": {
                    "type": "integer",
                    "example": 50
                },
                "lessonCompleted": {
                    "type": "boolean",
                    "example": false
                }
            }
        },
        "session.Day": {
            "type": "object",
            "properties": {
                "day": {
                    "type": "integer",
                    "example": 14
                },
                "income": {
                    "type": "number",
                    "example": 0
                },
                "expenses": {
                    "type": "number",
                    "example": 87.5
                }
            }
        },
        "session.Gamification": {
            "type": "object",
            "properties": {
                "badges": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/gamification.Badge"
                    }
                },
                "totalXp": {
                    "type": "integer",
                    "example": 1350
                },
                "learningXp": {
                    "type": "integer",
                    "example": 150
                },
                "level": {
                    "type": "integer",
                    "example": 2
                },
                "nextLevelXp": {
                    "type": "integer",
                    "example": 2000
                },
                "unlocked": {
                    "type": "integer",
                    "example": 3
                },
                "shoppingTotal": {
                    "type": "number",
                    "description": "Sum of all purchases from the shopping list",
                    "example": 412.7
                }
            }
        },
        "session.LessonStatus": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "example": "passive_income"
                },
                "title": {
                    "type": "string",
                    "example": "Passive income"
                },
                "description": {
                    "type": "string"
                },
                "content": {
                    "type": "string"
                },
                "questions": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/learning.Question"
                    }
                },
                "completed": {
                    "type": "boolean",
                    "example": false
                }
            }
        },
        "session.Summary": {
            "type": "object",
            "properties": {
                "month": {
                    "type": "string",
                    "example": "2024-07"
                },
                "income": {
                    "type": "number",
                    "example": 5200
                },
                "expenses": {
                    "type": "number",
                    "example": 3150.4
                },
                "investments": {
                    "type": "number",
                    "example": 800
                },
                "result": {
                    "type": "number",
                    "description": "Income minus expenses",
                    "example": 2049.6
                },
                "days": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/session.Day"
                    }
                }
            }
        },
        "shopping.Item": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "format": "uuid",
                    "example": "b44f7ad8-8d1f-4d7e-9b5a-1c2b4b8a3a01"
                },
                "name": {
                    "type": "string",
                    "example": "Rice 5kg"
                },
                "price": {
                    "type": "number",
                    "example": 27.9
                }
            }
        },
        "v1.AnalysisInput": {
            "type": "object",
            "properties": {
                "month": {
                    "type": "string",
                    "description": "Only analyze transactions of this month. All transactions are used if empty.",
                    "example": "2024-07"
                }
            }
        },
        "v1.AnalysisResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/advisor.Analysis"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "there is no user matching your query"
                }
            }
        },
        "v1.AnswerInput": {
            "type": "object",
            "properties": {
                "questionId": {
                    "type": "string",
                    "description": "ID of the question",
                    "example": "q1"
                },
                "option": {
                    "type": "integer",
                    "description": "Index of the selected option",
                    "example": 2
                }
            }
        },
        "v1.AnswerResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/session.Answer"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "there is no question with this id in the lesson"
                }
            }
        },
        "v1.CategoryRuleEditable": {
            "type": "object",
            "properties": {
                "priority": {
                    "type": "integer",
                    "description": "Rules with a lower priority are matched first",
                    "example": 0
                },
                "match": {
                    "type": "string",
                    "description": "Glob pattern matched against the description, ignoring case",
                    "example": "*uber*"
                },
                "category": {
                    "type": "string",
                    "description": "Category set on matching transactions",
                    "example": "Transport"
                }
            }
        },
        "v1.CategoryRuleListResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.CategoryRule"
                    },
                    "description": "List of category rules"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.CategoryRuleResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/models.CategoryRule"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.CelebrationResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/gamification.Badge"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "there is no user matching your query"
                }
            }
        },
        "v1.CompoundResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/calculator.Result"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "amounts, rate and period must not be negative"
                }
            }
        },
        "v1.ContributionInput": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "number",
                    "description": "Amount to add to the goal",
                    "example": 250
                }
            }
        },
        "v1.ConversionResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/rates.Conversion"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the exchange rate is currently not available"
                }
            }
        },
        "v1.GamificationResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/session.Gamification"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "there is no user matching your query"
                }
            }
        },
        "v1.Goal": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "format": "uuid",
                    "description": "UUID for the resource",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "createdAt": {
                    "type": "string",
                    "format": "date-time",
                    "description": "Time the resource was created",
                    "example": "2022-04-02T19:28:44.491514Z"
                },
                "updatedAt": {
                    "type": "string",
                    "format": "date-time",
                    "description": "Last time the resource was updated",
                    "example": "2022-04-17T20:14:01.048145Z"
                },
                "name": {
                    "type": "string",
                    "description": "Name of the goal",
                    "example": "New car"
                },
                "targetAmount": {
                    "type": "number",
                    "description": "The amount to save",
                    "example": 30000
                },
                "currentAmount": {
                    "type": "number",
                    "description": "The amount already saved",
                    "example": 1200
                },
                "deadline": {
                    "type": "string",
                    "format": "date-time",
                    "description": "Optional deadline",
                    "example": "2025-12-31T00:00:00Z"
                },
                "progress": {
                    "type": "number",
                    "description": "Progress towards the target in percent",
                    "example": 4
                },
                "completed": {
                    "type": "boolean",
                    "description": "Is the target reached?",
                    "example": false
                },
                "links": {
                    "$ref": "#/definitions/v1.GoalLinks"
                }
            }
        },
        "v1.GoalCreateResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID"
                },
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.GoalResponse"
                    },
                    "description": "List of created goals"
                }
            }
        },
        "v1.GoalEditable": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string",
                    "description": "Name of the goal",
                    "example": "New car"
                },
                "targetAmount": {
                    "type": "number",
                    "description": "The amount to save",
                    "example": 30000
                },
                "currentAmount": {
                    "type": "number",
                    "description": "The amount already saved",
                    "example": 1200
                },
                "deadline": {
                    "type": "string",
                    "format": "date-time",
                    "description": "Optional deadline",
                    "example": "2025-12-31T00:00:00Z"
                }
            }
        },
        "v1.GoalLinks": {
            "type": "object",
            "properties": {
                "self": {
                    "type": "string",
                    "description": "The goal itself",
                    "example": "https://example.com/api/v1/goals/1a4e3c6d-3a0b-4c47-8c8b-5ae30ff1e0a4"
                },
                "contributions": {
                    "type": "string",
                    "description": "Add money to the goal",
                    "example": "https://example.com/api/v1/goals/1a4e3c6d-3a0b-4c47-8c8b-5ae30ff1e0a4/contributions"
                }
            }
        },
        "v1.GoalListResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.Goal"
                    },
                    "description": "List of goals"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.GoalResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/v1.Goal"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.IncomeSource": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "format": "uuid",
                    "description": "UUID for the resource",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "createdAt": {
                    "type": "string",
                    "format": "date-time",
                    "description": "Time the resource was created",
                    "example": "2022-04-02T19:28:44.491514Z"
                },
                "updatedAt": {
                    "type": "string",
                    "format": "date-time",
                    "description": "Last time the resource was updated",
                    "example": "2022-04-17T20:14:01.048145Z"
                },
                "name": {
                    "type": "string",
                    "description": "Name of the income source",
                    "example": "Salary"
                },
                "expectedAmount": {
                    "type": "number",
                    "description": "Expected monthly amount",
                    "example": 5200
                },
                "color": {
                    "type": "string",
                    "description": "Display color",
                    "example": "#34d399"
                },
                "links": {
                    "type": "object",
                    "properties": {
                        "self": {
                            "type": "string",
                            "description": "The income source itself",
                            "example": "https://example.com/api/v1/income-sources/0f3e2b8c-1f39-4a34-9a5b-1d9b5b0e5c2d"
                        }
                    }
                }
            }
        },
        "v1.IncomeSourceEditable": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string",
                    "description": "Name of the income source",
                    "example": "Salary"
                },
                "expectedAmount": {
                    "type": "number",
                    "description": "Expected monthly amount",
                    "example": 5200
                },
                "color": {
                    "type": "string",
                    "description": "Display color",
                    "example": "#34d399"
                }
            }
        },
        "v1.IncomeSourceListResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.IncomeSource"
                    },
                    "description": "List of income sources"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.IncomeSourceResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/v1.IncomeSource"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.LessonListResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/session.LessonStatus"
                    },
                    "description": "All lessons"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "there is no user matching your query"
                }
            }
        },
        "v1.LoginInput": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string",
                    "example": "ana@example.com"
                },
                "password": {
                    "type": "string",
                    "example": "correct horse battery staple"
                }
            }
        },
        "v1.LoginResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the email address or password is not correct"
                },
                "data": {
                    "$ref": "#/definitions/auth.Token"
                }
            }
        },
        "v1.NotificationListResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    },
                    "description": "Notifications, newest first"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "there is no user matching your query"
                }
            }
        },
        "v1.ProjectEditable": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string",
                    "description": "Name of the project",
                    "example": "Kitchen renovation"
                }
            }
        },
        "v1.ProjectListResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Project"
                    },
                    "description": "List of projects"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.ProjectResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/models.Project"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the project name must not be empty"
                }
            }
        },
        "v1.QuoteResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/rates.Quote"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the exchange rate is currently not available"
                }
            }
        },
        "v1.RegisterInput": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string",
                    "example": "ana@example.com"
                },
                "name": {
                    "type": "string",
                    "example": "Ana"
                },
                "password": {
                    "type": "string",
                    "example": "correct horse battery staple"
                }
            }
        },
        "v1.ShoppingConcludeResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/v1.Transaction"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the shopping list is empty"
                }
            }
        },
        "v1.ShoppingEmailInput": {
            "type": "object",
            "properties": {
                "to": {
                    "type": "string",
                    "description": "Recipient of the list",
                    "example": "ana@example.com"
                }
            }
        },
        "v1.ShoppingItemEditable": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string",
                    "description": "Name of the item",
                    "example": "Rice 5kg"
                },
                "price": {
                    "type": "number",
                    "description": "Price, zero if not known yet",
                    "example": 27.9
                }
            }
        },
        "v1.ShoppingItemResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/shopping.Item"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the item name must not be empty"
                }
            }
        },
        "v1.ShoppingList": {
            "type": "object",
            "properties": {
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/shopping.Item"
                    },
                    "description": "Items in the order they were added"
                },
                "total": {
                    "type": "number",
                    "description": "Sum of all prices",
                    "example": 36.4
                },
                "pending": {
                    "type": "integer",
                    "description": "Number of items without a price",
                    "example": 1
                }
            }
        },
        "v1.ShoppingListResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/v1.ShoppingList"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "there is no user matching your query"
                }
            }
        },
        "v1.ShoppingShare": {
            "type": "object",
            "properties": {
                "text": {
                    "type": "string",
                    "description": "The list as a message",
                    "example": "\ud83d\uded2 *Cashfy shopping list - 14/07/2024*"
                },
                "whatsappUrl": {
                    "type": "string",
                    "description": "Opens WhatsApp with the message",
                    "example": "https://wa.me/?text=%F0%9F%9B%92"
                }
            }
        },
        "v1.ShoppingShareResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/v1.ShoppingShare"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "there is no user matching your query"
                }
            }
        },
        "v1.SummaryResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/session.Summary"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the month must have the format YYYY-MM, got '2024-13'"
                }
            }
        },
        "v1.Transaction": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "format": "uuid",
                    "description": "UUID for the resource",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "createdAt": {
                    "type": "string",
                    "format": "date-time",
                    "description": "Time the resource was created",
                    "example": "2022-04-02T19:28:44.491514Z"
                },
                "updatedAt": {
                    "type": "string",
                    "format": "date-time",
                    "description": "Last time the resource was updated",
                    "example": "2022-04-17T20:14:01.048145Z"
                },
                "date": {
                    "type": "string",
                    "format": "date-time",
                    "description": "Day of the transaction. Defaults to today",
                    "example": "2024-07-14T00:00:00Z"
                },
                "description": {
                    "type": "string",
                    "description": "What the transaction was for",
                    "example": "Groceries"
                },
                "amount": {
                    "type": "number",
                    "description": "The amount, always positive",
                    "example": 87.5
                },
                "category": {
                    "type": "string",
                    "description": "Set by the category rules if empty",
                    "example": "Food"
                },
                "type": {
                    "type": "string",
                    "description": "Type of the transaction",
                    "example": "expense",
                    "enum": [
                        "expense",
                        "income",
                        "investment"
                    ]
                },
                "links": {
                    "$ref": "#/definitions/v1.TransactionLinks"
                }
            }
        },
        "v1.TransactionCreateResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID"
                },
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.TransactionResponse"
                    },
                    "description": "List of created transactions"
                }
            }
        },
        "v1.TransactionEditable": {
            "type": "object",
            "properties": {
                "date": {
                    "type": "string",
                    "format": "date-time",
                    "description": "Day of the transaction. Defaults to today",
                    "example": "2024-07-14T00:00:00Z"
                },
                "description": {
                    "type": "string",
                    "description": "What the transaction was for",
                    "example": "Groceries"
                },
                "amount": {
                    "type": "number",
                    "description": "The amount, always positive",
                    "example": 87.5
                },
                "category": {
                    "type": "string",
                    "description": "Set by the category rules if empty",
                    "example": "Food"
                },
                "type": {
                    "type": "string",
                    "description": "Type of the transaction",
                    "example": "expense",
                    "enum": [
                        "expense",
                        "income",
                        "investment"
                    ]
                }
            }
        },
        "v1.TransactionLinks": {
            "type": "object",
            "properties": {
                "self": {
                    "type": "string",
                    "description": "The transaction itself",
                    "example": "https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"
                }
            }
        },
        "v1.TransactionListResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.Transaction"
                    },
                    "description": "List of transactions"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.TransactionResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID"
                },
                "data": {
                    "$ref": "#/definitions/v1.Transaction"
                }
            }
        },
        "v1.UserResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "a user with this email address already exists"
                },
                "data": {
                    "$ref": "#/definitions/models.User"
                }
            }
        },
        "v1.XPInput": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "integer",
                    "description": "XP to add, negative values deduct",
                    "example": 50
                }
            }
        },
        "v1.httpError": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "",
	Host:             "",
	BasePath:         "",
	Schemes:          []string{},
	Title:            "",
	Description:      "",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
