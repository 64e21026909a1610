// Package docs is generated by swaggo/swag from the handler annotations.
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
        "/api/auth/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register a new user",
                "parameters": [
                    {
                        "description": "Registration details",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handler.registerRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.authResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apierror.Response"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/apierror.Response"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/apierror.Response"}}
                }
            }
        },
        "/api/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login",
                "parameters": [
                    {
                        "description": "Login credentials",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handler.loginRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.authResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apierror.Response"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/apierror.Response"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/apierror.Response"}}
                }
            }
        },
        "/api/auth/verify": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Verify token",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.verifyResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/apierror.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apierror.Response"}}
                }
            }
        },
        "/api/auth/logout": {
            "post": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Logout",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.messageResponse"}}
                }
            }
        },
        "/api/profile": {
            "get": {
                "produces": ["application/json"],
                "tags": ["profile"],
                "summary": "Get the site profile",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Profile"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["profile"],
                "summary": "Update the site profile",
                "parameters": [
                    {"description": "Fields to change", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.profileRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Profile"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apierror.Response"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/apierror.Response"}}
                }
            }
        },
        "/api/posts": {
            "get": {
                "produces": ["application/json"],
                "tags": ["posts"],
                "summary": "List posts, newest first",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Post"}}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["posts"],
                "summary": "Create a post",
                "parameters": [
                    {"description": "Post with base64 file", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.postRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Post"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apierror.Response"}}
                }
            }
        },
        "/api/posts/{id}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["posts"],
                "summary": "Delete a post",
                "parameters": [{"type": "string", "description": "Post ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apierror.Response"}}
                }
            }
        },
        "/api/skills": {
            "get": {
                "produces": ["application/json"],
                "tags": ["skills"],
                "summary": "List skills by category and name",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Skill"}}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["skills"],
                "summary": "Add a skill",
                "parameters": [
                    {"description": "Skill", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.skillRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Skill"}}
                }
            }
        },
        "/api/skills/{id}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["skills"],
                "summary": "Delete a skill",
                "parameters": [{"type": "string", "description": "Skill ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.messageResponse"}}
                }
            }
        },
        "/api/projects": {
            "get": {
                "produces": ["application/json"],
                "tags": ["projects"],
                "summary": "List projects, newest first",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Project"}}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["projects"],
                "summary": "Add a project",
                "parameters": [
                    {"description": "Project", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.projectRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Project"}}
                }
            }
        },
        "/api/projects/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["projects"],
                "summary": "Replace a project",
                "parameters": [
                    {"type": "string", "description": "Project ID", "name": "id", "in": "path", "required": true},
                    {"description": "Project", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.projectRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Project"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apierror.Response"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["projects"],
                "summary": "Delete a project",
                "parameters": [{"type": "string", "description": "Project ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.messageResponse"}}
                }
            }
        }
    },
    "definitions": {
        "apierror.Response": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "domain.PublicUser": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "username": {"type": "string"}, "email": {"type": "string"}}
        },
        "domain.User": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "username": {"type": "string"}, "email": {"type": "string"}, "createdAt": {"type": "string"}}
        },
        "domain.Profile": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}, "name": {"type": "string"}, "about": {"type": "string"},
                "bio": {"type": "string"}, "status": {"type": "string"}, "image": {"type": "string"},
                "github": {"type": "string"}, "linkedin": {"type": "string"}, "twitter": {"type": "string"},
                "email": {"type": "string"}
            }
        },
        "domain.Post": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}, "type": {"type": "string"}, "title": {"type": "string"},
                "description": {"type": "string"}, "file": {"type": "string"},
                "originalFilename": {"type": "string"}, "createdAt": {"type": "string"}
            }
        },
        "domain.Skill": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"}, "name": {"type": "string"}, "category": {"type": "string"},
                "level": {"type": "string"}, "createdAt": {"type": "string"}, "updatedAt": {"type": "string"}
            }
        },
        "domain.Project": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"}, "name": {"type": "string"}, "description": {"type": "string"},
                "technologies": {"type": "array", "items": {"type": "string"}},
                "liveLink": {"type": "string"}, "githubLink": {"type": "string"}, "image": {"type": "string"},
                "featured": {"type": "boolean"}, "createdAt": {"type": "string"}, "updatedAt": {"type": "string"}
            }
        },
        "handler.registerRequest": {
            "type": "object",
            "properties": {"username": {"type": "string"}, "email": {"type": "string"}, "password": {"type": "string"}, "accessKey": {"type": "string"}}
        },
        "handler.loginRequest": {
            "type": "object",
            "properties": {"username": {"type": "string"}, "password": {"type": "string"}}
        },
        "handler.authResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}, "token": {"type": "string"}, "user": {"$ref": "#/definitions/domain.PublicUser"}}
        },
        "handler.verifyResponse": {
            "type": "object",
            "properties": {"user": {"$ref": "#/definitions/domain.User"}}
        },
        "handler.messageResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "handler.profileRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"}, "about": {"type": "string"}, "bio": {"type": "string"},
                "status": {"type": "string"}, "image": {"type": "string"}, "github": {"type": "string"},
                "linkedin": {"type": "string"}, "twitter": {"type": "string"}, "email": {"type": "string"}
            }
        },
        "handler.postRequest": {
            "type": "object",
            "required": ["file", "title", "type"],
            "properties": {
                "type": {"type": "string", "enum": ["image", "document"]}, "title": {"type": "string"},
                "description": {"type": "string"}, "file": {"type": "string"}, "originalFilename": {"type": "string"}
            }
        },
        "handler.skillRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "name": {"type": "string"},
                "category": {"type": "string", "enum": ["frontend", "backend", "tools", "other"]},
                "level": {"type": "string", "enum": ["beginner", "intermediate", "advanced"]}
            }
        },
        "handler.projectRequest": {
            "type": "object",
            "required": ["description", "name"],
            "properties": {
                "name": {"type": "string"}, "description": {"type": "string"},
                "technologies": {"type": "array", "items": {"type": "string"}},
                "liveLink": {"type": "string"}, "githubLink": {"type": "string"},
                "image": {"type": "string"}, "featured": {"type": "boolean"}
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
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Portfolio API",
	Description:      "Profile, posts, skills and projects for a personal portfolio, with access-key gated registration.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
