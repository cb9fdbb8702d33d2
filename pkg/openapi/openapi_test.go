package openapi

import (
	"context"
	"testing"

	"github.com/goliatone/go-schemaform/pkg/schema"
)

const specDoc = `{
  "openapi": "3.0.3",
  "info": {"title": "Accounts", "version": "1.0.0"},
  "paths": {
    "/signup": {
      "post": {
        "operationId": "createAccount",
        "summary": "Create an account",
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["email", "password", "plan"],
                "properties": {
                  "email": {"type": "string", "format": "email"},
                  "password": {"type": "string", "format": "password", "minLength": 8},
                  "displayName": {"type": "string", "maxLength": 50},
                  "plan": {"type": "string", "enum": ["free", "pro"], "default": "free"},
                  "seats": {"type": "integer", "minimum": 1, "maximum": 500},
                  "newsletter": {"type": "boolean"},
                  "interests": {"type": "array", "items": {"type": "string", "enum": ["go", "web", "infra"]}},
                  "startDate": {"type": "string", "format": "date"},
                  "profile": {"type": "object", "properties": {"bio": {"type": "string"}}}
                }
              }
            }
          }
        },
        "responses": {"201": {"description": "created"}}
      }
    }
  }
}`

func mustImport(t *testing.T) *schema.FormSchema {
	t.Helper()
	fs, err := FormSchema(context.Background(), []byte(specDoc), "createAccount", ImportOptions{})
	if err != nil {
		t.Fatalf("FormSchema: %v", err)
	}
	return fs
}

func TestImportOperation(t *testing.T) {
	t.Parallel()

	fs := mustImport(t)
	if fs.ID != "createAccount" {
		t.Fatalf("form id: %q", fs.ID)
	}
	if fs.Meta.Title != "Create an account" {
		t.Fatalf("title: %q", fs.Meta.Title)
	}
	if _, err := schema.Check(fs); err != nil {
		t.Fatalf("imported schema must validate: %v", err)
	}
}

func TestImportFieldMapping(t *testing.T) {
	t.Parallel()

	fs := mustImport(t)

	email, ok := fs.Field("email")
	if !ok || email.Renderer != schema.RendererText || email.InputType != "email" {
		t.Fatalf("email mapping wrong: %+v", email)
	}
	if email.Rules == nil || email.Rules.Required == "" {
		t.Fatalf("required email rule missing: %+v", email.Rules)
	}

	password, _ := fs.Field("password")
	if password.InputType != "password" {
		t.Fatalf("password input type: %+v", password)
	}
	if password.Rules == nil || password.Rules.MinLength == nil || password.Rules.MinLength.Value != 8 {
		t.Fatalf("minLength rule missing: %+v", password.Rules)
	}

	plan, _ := fs.Field("plan")
	if plan.Renderer != schema.RendererSelect || len(plan.Props.Data) != 2 {
		t.Fatalf("enum select mapping wrong: %+v", plan)
	}
	if plan.Default != "free" {
		t.Fatalf("default not carried: %v", plan.Default)
	}

	seats, _ := fs.Field("seats")
	if seats.Renderer != schema.RendererNumber {
		t.Fatalf("integer mapping wrong: %+v", seats)
	}
	if seats.Props.Min == nil || *seats.Props.Min != 1 || seats.Props.Max == nil || *seats.Props.Max != 500 {
		t.Fatalf("numeric bounds missing: %+v", seats.Props)
	}
	if seats.Rules == nil || seats.Rules.Min == nil || seats.Rules.Max == nil {
		t.Fatalf("numeric rules missing: %+v", seats.Rules)
	}

	newsletter, _ := fs.Field("newsletter")
	if newsletter.Renderer != schema.RendererCheckbox {
		t.Fatalf("boolean mapping wrong: %+v", newsletter)
	}

	interests, _ := fs.Field("interests")
	if interests.Renderer != schema.RendererMultiSelect || len(interests.Props.Data) != 3 {
		t.Fatalf("enum array mapping wrong: %+v", interests)
	}

	start, _ := fs.Field("startDate")
	if start.Renderer != schema.RendererDate {
		t.Fatalf("date mapping wrong: %+v", start)
	}
	if start.Label != "Start date" {
		t.Fatalf("label derivation wrong: %q", start.Label)
	}

	if _, ok := fs.Field("profile"); ok {
		t.Fatalf("nested object must be skipped")
	}
}

func TestImportUnknownOperation(t *testing.T) {
	t.Parallel()

	if _, err := FormSchema(context.Background(), []byte(specDoc), "nope", ImportOptions{}); err == nil {
		t.Fatalf("expected error for unknown operation")
	}
	if _, err := FormSchema(context.Background(), []byte(specDoc), "", ImportOptions{}); err == nil {
		t.Fatalf("expected error for empty operation id")
	}
}

func TestImportInvalidDocument(t *testing.T) {
	t.Parallel()

	if _, err := FormSchema(context.Background(), []byte("not a spec"), "x", ImportOptions{}); err == nil {
		t.Fatalf("expected error for malformed document")
	}
}
