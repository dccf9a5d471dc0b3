package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "DCCP Hub API",
        "description": "Enrollment eligibility and academic period service",
        "version": "0.1.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Enrollment", "description": "Enrollment status resolution"},
        {"name": "Academic", "description": "Academic period configuration"},
        {"name": "Validation", "description": "Onboarding identity validation"},
        {"name": "Dashboard", "description": "Aggregated portal views"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"},
                    "503": {"description": "A backing store is unreachable"}
                }
            }
        },
        "/api/v1/enrollment-status": {
            "get": {
                "tags": ["Enrollment"],
                "summary": "Resolve enrollment status for the current term",
                "parameters": [
                    {"name": "studentId", "in": "query", "type": "string", "required": true},
                    {"name": "semester", "in": "query", "type": "string", "required": true},
                    {"name": "schoolYear", "in": "query", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/EnrollmentStatusResponse"}},
                    "400": {"description": "Missing required parameters"},
                    "503": {"description": "All enrollment sources unavailable"}
                }
            }
        },
        "/api/v1/academic-period": {
            "get": {
                "tags": ["Academic"],
                "summary": "Current academic period",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "500": {"description": "Academic period misconfigured"}
                }
            }
        },
        "/api/v1/students/validate": {
            "post": {
                "tags": ["Validation"],
                "summary": "Validate a claimed student identity",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/StudentValidationRequest"}}
                ],
                "responses": {
                    "200": {"description": "Outcome with valid discriminant"},
                    "400": {"description": "Email and Student ID are required"},
                    "503": {"description": "Records store unavailable"}
                }
            }
        },
        "/api/v1/faculty/validate": {
            "post": {
                "tags": ["Validation"],
                "summary": "Validate a claimed faculty identity",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/FacultyValidationRequest"}}
                ],
                "responses": {
                    "200": {"description": "Valid faculty"},
                    "400": {"description": "Email and Faculty Code are required"},
                    "403": {"description": "Faculty account not active"},
                    "404": {"description": "Faculty not found"}
                }
            }
        },
        "/api/v1/dashboard/student": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Aggregated dashboard for the signed-in student",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Missing or invalid token"},
                    "403": {"description": "Onboarding incomplete or wrong role"}
                }
            }
        },
        "/api/v1/classes/{classId}/grade-averages": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Per-column grade averages for a class",
                "parameters": [
                    {"name": "classId", "in": "path", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "classId must be numeric"},
                    "503": {"description": "Grade store unavailable"}
                }
            }
        }
    },
    "definitions": {
        "EnrollmentStatusResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "enrollmentStatus": {"$ref": "#/definitions/EnrollmentStatus"}
            }
        },
        "EnrollmentStatus": {
            "type": "object",
            "properties": {
                "isEnrolled": {"type": "boolean"},
                "status": {"type": "string"},
                "semester": {"type": "integer"},
                "academicYear": {"type": "integer"},
                "schoolYear": {"type": "string"},
                "courseId": {"type": "string"}
            }
        },
        "StudentValidationRequest": {
            "type": "object",
            "required": ["email", "studentId"],
            "properties": {
                "email": {"type": "string"},
                "studentId": {"type": "string"}
            }
        },
        "FacultyValidationRequest": {
            "type": "object",
            "required": ["email", "facultyCode"],
            "properties": {
                "email": {"type": "string"},
                "facultyCode": {"type": "string"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
