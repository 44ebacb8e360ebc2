// Package docs registra o documento OpenAPI servido em /swagger.
// Acompanha as anotações godoc dos handlers; regenerável com swag init.
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
		"/auth/register": {
			"post": {
				"tags": [
					"Auth"
				],
				"summary": "Cadastra usuário",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Criado",
						"schema": {
							"$ref": "#/definitions/user.User"
						}
					},
					"400": {
						"description": "Erro",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"409": {
						"description": "Erro",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"description": "Corpo",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handlers.registerRequest"
						}
					}
				]
			}
		},
		"/auth/login": {
			"post": {
				"tags": [
					"Auth"
				],
				"summary": "Login por email ou nome de usuário",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "Token",
						"schema": {
							"$ref": "#/definitions/handlers.loginResponse"
						}
					},
					"401": {
						"description": "Erro",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"description": "Corpo",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handlers.loginRequest"
						}
					}
				]
			}
		},
		"/auth/me": {
			"get": {
				"tags": [
					"Auth"
				],
				"summary": "Usuário logado",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/user.User"
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
		"/quizzes": {
			"get": {
				"tags": [
					"Quizzes"
				],
				"summary": "Lista os quizzes do autor",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/quiz.Quiz"
							}
						}
					},
					"400": {
						"description": "Erro",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "DRAFT ou PUBLISHED",
						"name": "status",
						"in": "query"
					}
				]
			},
			"post": {
				"tags": [
					"Quizzes"
				],
				"summary": "Cria rascunho",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Criado",
						"schema": {
							"$ref": "#/definitions/quiz.Quiz"
						}
					},
					"400": {
						"description": "Erro",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"description": "Corpo",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handlers.quizRequest"
						}
					}
				]
			}
		},
		"/quizzes/{id}": {
			"get": {
				"tags": [
					"Quizzes"
				],
				"summary": "Detalhe do quiz",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/quiz.Quiz"
						}
					},
					"403": {
						"description": "Erro",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"404": {
						"description": "Erro",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			},
			"put": {
				"tags": [
					"Quizzes"
				],
				"summary": "Renomeia rascunho",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/quiz.Quiz"
						}
					},
					"400": {
						"description": "Erro",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"409": {
						"description": "Erro",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Corpo",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handlers.quizRequest"
						}
					}
				]
			},
			"delete": {
				"tags": [
					"Quizzes"
				],
				"summary": "Remove rascunho",
				"produces": [
					"application/json"
				],
				"responses": {
					"204": {
						"description": "Removido"
					},
					"409": {
						"description": "Erro",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/quizzes/{id}/publish": {
			"post": {
				"tags": [
					"Quizzes"
				],
				"summary": "Publica o quiz",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/quiz.Quiz"
						}
					},
					"409": {
						"description": "Erro",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/quizzes/{id}/questions": {
			"post": {
				"tags": [
					"Questions"
				],
				"summary": "Acrescenta pergunta",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Criada",
						"schema": {
							"$ref": "#/definitions/quiz.Question"
						}
					},
					"400": {
						"description": "Erro",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"409": {
						"description": "Erro",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Corpo",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handlers.questionRequest"
						}
					}
				]
			}
		},
		"/quizzes/{id}/questions/order": {
			"put": {
				"tags": [
					"Questions"
				],
				"summary": "Reordena as perguntas do rascunho",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/quiz.Question"
							}
						}
					},
					"400": {
						"description": "Erro",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"409": {
						"description": "Erro",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Corpo",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handlers.reorderRequest"
						}
					}
				]
			}
		},
		"/quizzes/{id}/questions/{questionId}": {
			"put": {
				"tags": [
					"Questions"
				],
				"summary": "Reescreve a pergunta",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/quiz.Question"
						}
					},
					"400": {
						"description": "Erro",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"404": {
						"description": "Erro",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "Question ID",
						"name": "questionId",
						"in": "path",
						"required": true
					},
					{
						"description": "Corpo",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handlers.questionRequest"
						}
					}
				]
			},
			"delete": {
				"tags": [
					"Questions"
				],
				"summary": "Remove a pergunta",
				"produces": [
					"application/json"
				],
				"responses": {
					"204": {
						"description": "Removida"
					},
					"404": {
						"description": "Erro",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "Question ID",
						"name": "questionId",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/games": {
			"post": {
				"tags": [
					"Games"
				],
				"summary": "Abre sessão de um quiz publicado",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Criada"
					},
					"403": {
						"description": "Erro",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"409": {
						"description": "Erro",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"description": "Corpo",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handlers.createGameRequest"
						}
					}
				]
			}
		},
		"/games/{code}": {
			"get": {
				"tags": [
					"Games"
				],
				"summary": "Estado da sessão",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"404": {
						"description": "Erro",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "Código da sessão",
						"name": "code",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/games/{code}/join": {
			"post": {
				"tags": [
					"Flow"
				],
				"summary": "PlayerJoined",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "Evento aplicado",
						"schema": {
							"$ref": "#/definitions/handlers.EventResponse"
						}
					},
					"400": {
						"description": "Erro",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"409": {
						"description": "Erro",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "Código da sessão",
						"name": "code",
						"in": "path",
						"required": true
					},
					{
						"description": "Corpo",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handlers.userRequest"
						}
					}
				]
			}
		},
		"/games/{code}/leave": {
			"post": {
				"tags": [
					"Flow"
				],
				"summary": "PlayerLeft",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "Evento aplicado",
						"schema": {
							"$ref": "#/definitions/handlers.EventResponse"
						}
					},
					"409": {
						"description": "Erro",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "Código da sessão",
						"name": "code",
						"in": "path",
						"required": true
					},
					{
						"description": "Corpo",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handlers.userRequest"
						}
					}
				]
			}
		},
		"/games/{code}/start": {
			"post": {
				"tags": [
					"Flow"
				],
				"summary": "GameStarted",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "Evento aplicado",
						"schema": {
							"$ref": "#/definitions/handlers.EventResponse"
						}
					},
					"409": {
						"description": "Erro",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "Código da sessão",
						"name": "code",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/games/{code}/cancel": {
			"post": {
				"tags": [
					"Flow"
				],
				"summary": "GameCancelled",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "Evento aplicado",
						"schema": {
							"$ref": "#/definitions/handlers.EventResponse"
						}
					},
					"409": {
						"description": "Erro",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "Código da sessão",
						"name": "code",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/games/{code}/next-player": {
			"post": {
				"tags": [
					"Flow"
				],
				"summary": "NextPlayerSelected",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "Evento aplicado",
						"schema": {
							"$ref": "#/definitions/handlers.EventResponse"
						}
					},
					"409": {
						"description": "Erro",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "Código da sessão",
						"name": "code",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/games/{code}/allow-robbing": {
			"post": {
				"tags": [
					"Flow"
				],
				"summary": "QuestionRobbingIsAllowed",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "Evento aplicado",
						"schema": {
							"$ref": "#/definitions/handlers.EventResponse"
						}
					},
					"409": {
						"description": "Erro",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "Código da sessão",
						"name": "code",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/games/{code}/questions/{questionId}/select": {
			"post": {
				"tags": [
					"Flow"
				],
				"summary": "QuestionSelected",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "Evento aplicado",
						"schema": {
							"$ref": "#/definitions/handlers.EventResponse"
						}
					},
					"404": {
						"description": "Erro",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"409": {
						"description": "Erro",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "Código da sessão",
						"name": "code",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "Question ID",
						"name": "questionId",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/games/{code}/questions/{questionId}/answer": {
			"post": {
				"tags": [
					"Flow"
				],
				"summary": "AnswerSubmitted",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "Evento aplicado",
						"schema": {
							"$ref": "#/definitions/handlers.EventResponse"
						}
					},
					"400": {
						"description": "Erro",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"409": {
						"description": "Erro",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "Código da sessão",
						"name": "code",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "Question ID",
						"name": "questionId",
						"in": "path",
						"required": true
					},
					{
						"description": "Corpo",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handlers.answerRequest"
						}
					}
				]
			}
		},
		"/games/{code}/questions/{questionId}/rob": {
			"post": {
				"tags": [
					"Flow"
				],
				"summary": "QuestionRobbed",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "Evento aplicado",
						"schema": {
							"$ref": "#/definitions/handlers.EventResponse"
						}
					},
					"400": {
						"description": "Erro",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"409": {
						"description": "Erro",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "Código da sessão",
						"name": "code",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "Question ID",
						"name": "questionId",
						"in": "path",
						"required": true
					},
					{
						"description": "Corpo",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handlers.answerRequest"
						}
					}
				]
			}
		},
		"/reports/games": {
			"get": {
				"tags": [
					"Reports"
				],
				"summary": "Partidas anteriores",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/history.PreviousGame"
							}
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "integer",
						"name": "page",
						"in": "query"
					},
					{
						"type": "integer",
						"name": "limit",
						"in": "query"
					}
				]
			}
		},
		"/reports/games/{id}": {
			"get": {
				"tags": [
					"Reports"
				],
				"summary": "Detalhe da partida",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/history.PreviousGame"
						}
					},
					"403": {
						"description": "Erro",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"404": {
						"description": "Erro",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/reports/quizzes/{id}": {
			"get": {
				"tags": [
					"Reports"
				],
				"summary": "Estatísticas do quiz",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/history.QuizStats"
						}
					},
					"403": {
						"description": "Erro",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"404": {
						"description": "Erro",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			}
		}
	},
	"definitions": {
		"handlers.ErrorResponse": {
			"type": "object",
			"properties": {
				"error": {
					"type": "string"
				},
				"message": {
					"type": "string"
				}
			}
		},
		"handlers.registerRequest": {
			"type": "object",
			"properties": {
				"username": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"password": {
					"type": "string"
				}
			},
			"required": [
				"username",
				"email",
				"password"
			]
		},
		"handlers.loginRequest": {
			"type": "object",
			"properties": {
				"login": {
					"type": "string"
				},
				"password": {
					"type": "string"
				}
			},
			"required": [
				"login",
				"password"
			]
		},
		"handlers.loginResponse": {
			"type": "object",
			"properties": {
				"accessToken": {
					"type": "string"
				},
				"expiresIn": {
					"type": "integer"
				}
			}
		},
		"handlers.quizRequest": {
			"type": "object",
			"properties": {
				"title": {
					"type": "string"
				},
				"description": {
					"type": "string"
				}
			},
			"required": [
				"title"
			]
		},
		"handlers.questionRequest": {
			"type": "object",
			"properties": {
				"prompt": {
					"type": "string"
				},
				"answer": {
					"type": "string"
				},
				"points": {
					"type": "integer"
				}
			},
			"required": [
				"prompt",
				"answer"
			]
		},
		"handlers.reorderRequest": {
			"type": "object",
			"properties": {
				"questionIds": {
					"type": "array",
					"items": {
						"type": "string"
					}
				}
			},
			"required": [
				"questionIds"
			]
		},
		"handlers.createGameRequest": {
			"type": "object",
			"properties": {
				"quizId": {
					"type": "string"
				}
			},
			"required": [
				"quizId"
			]
		},
		"handlers.userRequest": {
			"type": "object",
			"properties": {
				"userId": {
					"type": "string"
				}
			},
			"required": [
				"userId"
			]
		},
		"handlers.answerRequest": {
			"type": "object",
			"properties": {
				"answer": {
					"type": "string"
				}
			},
			"required": [
				"answer"
			]
		},
		"handlers.EventResponse": {
			"type": "object",
			"properties": {
				"event": {
					"type": "string"
				},
				"correct": {
					"type": "boolean"
				},
				"payload": {
					"type": "object"
				}
			}
		},
		"user.User": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"username": {
					"type": "string"
				},
				"email": {
					"type": "string"
				}
			}
		},
		"quiz.Question": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"quizId": {
					"type": "string"
				},
				"prompt": {
					"type": "string"
				},
				"answer": {
					"type": "string"
				},
				"points": {
					"type": "integer"
				},
				"sortOrder": {
					"type": "integer"
				}
			}
		},
		"quiz.Quiz": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"ownerId": {
					"type": "string"
				},
				"title": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"status": {
					"type": "string"
				},
				"questions": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/quiz.Question"
					}
				}
			}
		},
		"history.RankedParticipant": {
			"type": "object",
			"properties": {
				"userId": {
					"type": "string"
				},
				"username": {
					"type": "string"
				},
				"points": {
					"type": "integer"
				},
				"rank": {
					"type": "integer"
				},
				"isGameMaster": {
					"type": "boolean"
				}
			}
		},
		"history.PreviousGame": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"sessionCode": {
					"type": "string"
				},
				"quizId": {
					"type": "string"
				},
				"quizTitle": {
					"type": "string"
				},
				"completedAt": {
					"type": "string"
				},
				"participants": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/history.RankedParticipant"
					}
				}
			}
		},
		"history.QuizStats": {
			"type": "object",
			"properties": {
				"quizId": {
					"type": "string"
				},
				"gamesPlayed": {
					"type": "integer"
				},
				"players": {
					"type": "integer"
				},
				"averagePoints": {
					"type": "number"
				},
				"topPoints": {
					"type": "integer"
				},
				"lastPlayedAt": {
					"type": "string"
				}
			}
		}
	},
	"securityDefinitions": {
		"BearerAuth": {
			"type": "apiKey",
			"name": "Authorization",
			"in": "header"
		}
	},
	"externalDocs": {
		"description": "Eventos em tempo real via WebSocket em /ws?token=..."
	}
}`

// SwaggerInfo guarda os metadados exportados do documento.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "QuizArena API",
	Description:      "Sessões de quiz ao vivo: o mestre do jogo conduz, os jogadores respondem e roubam perguntas.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
