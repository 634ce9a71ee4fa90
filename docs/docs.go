// Package docs holds the OpenAPI description served at /swagger. Regenerate
// with `swag init -g cmd/server/main.go` after changing handler annotations.
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
		"/admin/query": {
			"post": {
				"summary": "Выполнить SQL-запрос",
				"tags": [
					"admin"
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
						"name": "input",
						"in": "body",
						"required": true,
						"description": "SQL",
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": ""
					},
					"400": {
						"description": "",
						"schema": {
							"$ref": "#/definitions/presenter.ErrorResponse"
						}
					}
				}
			}
		},
		"/admin/stats": {
			"get": {
				"summary": "Количество строк по таблицам",
				"tags": [
					"admin"
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
						"description": ""
					}
				}
			}
		},
		"/admin/tables": {
			"get": {
				"summary": "Таблицы базы данных",
				"tags": [
					"admin"
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
						"description": ""
					}
				}
			}
		},
		"/analytics": {
			"get": {
				"summary": "Аналитика по кандидатам",
				"tags": [
					"HR"
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
						"description": ""
					}
				}
			}
		},
		"/auth/login": {
			"post": {
				"summary": "Вход по логину или email",
				"tags": [
					"auth"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "input",
						"in": "body",
						"required": true,
						"description": "учётные данные",
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": ""
					},
					"400": {
						"description": "",
						"schema": {
							"$ref": "#/definitions/presenter.ErrorResponse"
						}
					},
					"401": {
						"description": "",
						"schema": {
							"$ref": "#/definitions/presenter.ErrorResponse"
						}
					}
				}
			}
		},
		"/auth/register": {
			"post": {
				"summary": "Регистрация пользователя",
				"tags": [
					"auth"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "input",
						"in": "body",
						"required": true,
						"description": "регистрационные данные",
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"201": {
						"description": ""
					},
					"400": {
						"description": "",
						"schema": {
							"$ref": "#/definitions/presenter.ErrorResponse"
						}
					},
					"409": {
						"description": "",
						"schema": {
							"$ref": "#/definitions/presenter.ErrorResponse"
						}
					}
				}
			}
		},
		"/candidates": {
			"get": {
				"summary": "Список кандидатов",
				"tags": [
					"HR"
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
						"description": "поиск по имени, email, должности и навыкам",
						"type": "string"
					},
					{
						"name": "position",
						"in": "query",
						"required": false,
						"description": "точное совпадение должности",
						"type": "string"
					},
					{
						"name": "sort",
						"in": "query",
						"required": false,
						"description": "recency | score | name",
						"type": "string"
					},
					{
						"name": "desc",
						"in": "query",
						"required": false,
						"description": "по убыванию",
						"type": "boolean"
					}
				],
				"responses": {
					"200": {
						"description": ""
					},
					"400": {
						"description": "",
						"schema": {
							"$ref": "#/definitions/presenter.ErrorResponse"
						}
					},
					"403": {
						"description": "",
						"schema": {
							"$ref": "#/definitions/presenter.ErrorResponse"
						}
					}
				}
			}
		},
		"/candidates/{id}": {
			"get": {
				"summary": "Карточка кандидата",
				"tags": [
					"HR"
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
						"description": "ID кандидата",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": ""
					},
					"404": {
						"description": "",
						"schema": {
							"$ref": "#/definitions/presenter.ErrorResponse"
						}
					}
				}
			}
		},
		"/favorites": {
			"get": {
				"summary": "Избранные кандидаты",
				"tags": [
					"HR"
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
						"description": ""
					}
				}
			}
		},
		"/favorites/{candidateId}": {
			"put": {
				"summary": "Добавить в избранное",
				"tags": [
					"HR"
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
						"name": "candidateId",
						"in": "path",
						"required": true,
						"description": "ID кандидата",
						"type": "string"
					},
					{
						"name": "input",
						"in": "body",
						"required": false,
						"description": "заметки",
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": ""
					},
					"404": {
						"description": "",
						"schema": {
							"$ref": "#/definitions/presenter.ErrorResponse"
						}
					}
				}
			},
			"delete": {
				"summary": "Убрать из избранного",
				"tags": [
					"HR"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "candidateId",
						"in": "path",
						"required": true,
						"description": "ID кандидата",
						"type": "string"
					}
				],
				"responses": {
					"204": {
						"description": ""
					}
				}
			},
			"get": {
				"summary": "Кандидат в избранном?",
				"tags": [
					"HR"
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
						"name": "candidateId",
						"in": "path",
						"required": true,
						"description": "ID кандидата",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": ""
					}
				}
			}
		},
		"/health": {
			"get": {
				"summary": "Liveness probe",
				"tags": [
					"health"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": ""
					}
				}
			}
		},
		"/interviews": {
			"post": {
				"summary": "Начать собеседование",
				"description": "Вопросы подбираются по должности и уровню из резюме; без резюме используется общий набор.",
				"tags": [
					"Собеседование"
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
						"name": "input",
						"in": "body",
						"required": true,
						"description": "параметры",
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"201": {
						"description": ""
					},
					"400": {
						"description": "",
						"schema": {
							"$ref": "#/definitions/presenter.ErrorResponse"
						}
					},
					"409": {
						"description": "",
						"schema": {
							"$ref": "#/definitions/presenter.ErrorResponse"
						}
					}
				}
			},
			"delete": {
				"summary": "Сбросить текущее собеседование",
				"tags": [
					"Собеседование"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"204": {
						"description": ""
					}
				}
			}
		},
		"/interviews/abort": {
			"post": {
				"summary": "Прервать собеседование",
				"tags": [
					"Собеседование"
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
						"description": ""
					}
				}
			}
		},
		"/interviews/answer": {
			"post": {
				"summary": "Ответить на текущий вопрос",
				"tags": [
					"Собеседование"
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
						"name": "input",
						"in": "body",
						"required": true,
						"description": "ответ",
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": ""
					},
					"400": {
						"description": "",
						"schema": {
							"$ref": "#/definitions/presenter.ErrorResponse"
						}
					},
					"409": {
						"description": "",
						"schema": {
							"$ref": "#/definitions/presenter.ErrorResponse"
						}
					}
				}
			}
		},
		"/interviews/current": {
			"get": {
				"summary": "Текущее собеседование",
				"tags": [
					"Собеседование"
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
						"description": ""
					},
					"404": {
						"description": "",
						"schema": {
							"$ref": "#/definitions/presenter.ErrorResponse"
						}
					}
				}
			}
		},
		"/interviews/history": {
			"get": {
				"summary": "История собеседований",
				"tags": [
					"Собеседование"
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
						"name": "limit",
						"in": "query",
						"required": false,
						"description": "не более N записей",
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": ""
					}
				}
			}
		},
		"/interviews/history/{id}": {
			"get": {
				"summary": "Сохранённое собеседование",
				"tags": [
					"Собеседование"
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
						"description": "ID записи",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": ""
					},
					"404": {
						"description": "",
						"schema": {
							"$ref": "#/definitions/presenter.ErrorResponse"
						}
					}
				}
			}
		},
		"/interviews/results": {
			"get": {
				"summary": "Итоги завершённого собеседования",
				"tags": [
					"Собеседование"
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
						"description": ""
					},
					"409": {
						"description": "",
						"schema": {
							"$ref": "#/definitions/presenter.ErrorResponse"
						}
					}
				}
			}
		},
		"/interviews/save": {
			"post": {
				"summary": "Сохранить результаты в историю",
				"tags": [
					"Собеседование"
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
					"201": {
						"description": ""
					},
					"409": {
						"description": "",
						"schema": {
							"$ref": "#/definitions/presenter.ErrorResponse"
						}
					}
				}
			}
		},
		"/me": {
			"get": {
				"summary": "Профиль текущего пользователя",
				"tags": [
					"profile"
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
						"description": ""
					},
					"401": {
						"description": "",
						"schema": {
							"$ref": "#/definitions/presenter.ErrorResponse"
						}
					}
				}
			},
			"put": {
				"summary": "Обновить профиль",
				"tags": [
					"profile"
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
						"name": "input",
						"in": "body",
						"required": true,
						"description": "поля профиля",
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": ""
					},
					"400": {
						"description": "",
						"schema": {
							"$ref": "#/definitions/presenter.ErrorResponse"
						}
					},
					"409": {
						"description": "",
						"schema": {
							"$ref": "#/definitions/presenter.ErrorResponse"
						}
					}
				}
			}
		},
		"/me/deactivate": {
			"post": {
				"summary": "Деактивировать учётную запись",
				"tags": [
					"profile"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"204": {
						"description": ""
					}
				}
			}
		},
		"/me/password": {
			"post": {
				"summary": "Сменить пароль",
				"tags": [
					"profile"
				],
				"consumes": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "input",
						"in": "body",
						"required": true,
						"description": "текущий и новый пароль",
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"204": {
						"description": ""
					},
					"400": {
						"description": "",
						"schema": {
							"$ref": "#/definitions/presenter.ErrorResponse"
						}
					}
				}
			}
		},
		"/me/stats": {
			"get": {
				"summary": "Моя статистика",
				"tags": [
					"profile"
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
						"description": ""
					}
				}
			}
		},
		"/ready": {
			"get": {
				"summary": "Readiness probe",
				"tags": [
					"health"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": ""
					},
					"503": {
						"description": ""
					}
				}
			}
		},
		"/resumes": {
			"post": {
				"summary": "Загрузить резюме",
				"description": "Принимает PDF, DOCX или TXT. Нечитаемый файл сохраняется с оценкой «Error».",
				"tags": [
					"Резюме"
				],
				"consumes": [
					"multipart/form-data"
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
						"name": "file",
						"in": "formData",
						"required": true,
						"description": "Файл резюме (PDF/DOCX/TXT)",
						"type": "file"
					}
				],
				"responses": {
					"201": {
						"description": ""
					},
					"400": {
						"description": "",
						"schema": {
							"$ref": "#/definitions/presenter.ErrorResponse"
						}
					},
					"403": {
						"description": "",
						"schema": {
							"$ref": "#/definitions/presenter.ErrorResponse"
						}
					},
					"500": {
						"description": "",
						"schema": {
							"$ref": "#/definitions/presenter.ErrorResponse"
						}
					}
				}
			},
			"get": {
				"summary": "Мои резюме",
				"tags": [
					"Резюме"
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
						"description": ""
					}
				}
			}
		},
		"/resumes/text": {
			"post": {
				"summary": "Отправить резюме текстом",
				"tags": [
					"Резюме"
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
						"name": "input",
						"in": "body",
						"required": true,
						"description": "текст резюме",
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"201": {
						"description": ""
					},
					"400": {
						"description": "",
						"schema": {
							"$ref": "#/definitions/presenter.ErrorResponse"
						}
					}
				}
			}
		},
		"/resumes/{id}": {
			"get": {
				"summary": "Резюме с текущим анализом",
				"tags": [
					"Резюме"
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
						"description": "ID резюме",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": ""
					},
					"404": {
						"description": "",
						"schema": {
							"$ref": "#/definitions/presenter.ErrorResponse"
						}
					}
				}
			}
		},
		"/resumes/{id}/analyses": {
			"get": {
				"summary": "История анализов резюме",
				"tags": [
					"Резюме"
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
						"description": "ID резюме",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": ""
					}
				}
			}
		},
		"/resumes/{id}/file": {
			"get": {
				"summary": "Скачать файл резюме",
				"tags": [
					"Резюме"
				],
				"produces": [
					"application/octet-stream"
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
						"description": "ID резюме",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": ""
					},
					"404": {
						"description": "",
						"schema": {
							"$ref": "#/definitions/presenter.ErrorResponse"
						}
					}
				}
			}
		},
		"/resumes/{id}/reanalyze": {
			"post": {
				"summary": "Повторный анализ",
				"tags": [
					"Резюме"
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
						"description": "ID резюме",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": ""
					}
				}
			}
		}
	},
	"definitions": {
		"presenter.ErrorResponse": {
			"type": "object",
			"properties": {
				"message": {
					"type": "string"
				}
			}
		}
	},
	"securityDefinitions": {
		"BearerAuth": {
			"description": "Токен авторизации. Поддерживаются форматы: \"Bearer <JWT>\" или \"<JWT>\".",
			"type": "apiKey",
			"name": "Authorization",
			"in": "header"
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{"http"},
	Title:            "recruit API",
	Description:      "Сервис проверки резюме кандидатов, тренировочных собеседований и подбора кандидатов для HR.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
