package core

import (
	"github.com/go-playground/validator"

	"github.com/LerianStudio/midaz/v3/components/rebac/internal/domain/tuple"
	"github.com/LerianStudio/midaz/v3/pkg/merrors"
)

// validate is shared across every request-boundary check this package
// performs. go-playground/validator.Validate is safe for concurrent
// use once built, same as the teacher's common/net/http.newValidator
// singleton.
var validate = validator.New()

// permissionRequest is the boundary shape common to CheckPermission,
// ExpandPermission, and LookupResources/LookupSubjects: spec §6 treats
// a malformed tenant, subject, permission, or object as an
// InvalidRequestError, never a silent zero-result or a panic deeper in
// the evaluator.
type permissionRequest struct {
	Tenant     string    `validate:"required"`
	Subject    tuple.Ref `validate:"required"`
	Permission string    `validate:"required"`
	Object     tuple.Ref `validate:"required"`
}

// validatePermissionRequest checks field presence via validator, then
// that both Subject.Type and Object.Type are registered namespace
// types — the part validator's struct tags cannot express since it
// depends on runtime registry state, not the shape of the struct.
func (s *Service) validatePermissionRequest(tenant string, subject tuple.Ref, permission string, object tuple.Ref) error {
	req := permissionRequest{Tenant: tenant, Subject: subject, Permission: permission, Object: object}

	if err := validate.Struct(req); err != nil {
		return &merrors.InvalidRequestError{Reason: "missing required field", Err: err}
	}

	if _, ok := s.Registry.TypeDef(subject.Type); !ok {
		return &merrors.InvalidRequestError{Reason: "unknown subject type: " + subject.Type}
	}

	if _, ok := s.Registry.TypeDef(object.Type); !ok {
		return &merrors.InvalidRequestError{Reason: "unknown object type: " + object.Type}
	}

	return nil
}

// objectPermissionRequest is the boundary shape for ExpandPermission/
// LookupSubjects/LookupResources, which take an object or resource
// type rather than a concrete subject.
type objectPermissionRequest struct {
	Tenant     string `validate:"required"`
	Permission string `validate:"required"`
}

func (s *Service) validateObjectPermissionRequest(tenant, permission, objectType string) error {
	if err := validate.Struct(objectPermissionRequest{Tenant: tenant, Permission: permission}); err != nil {
		return &merrors.InvalidRequestError{Reason: "missing required field", Err: err}
	}

	if objectType == "" {
		return nil
	}

	if _, ok := s.Registry.TypeDef(objectType); !ok {
		return &merrors.InvalidRequestError{Reason: "unknown object type: " + objectType}
	}

	return nil
}

// validateLookupResourcesRequest is LookupResources' boundary check: a
// concrete subject plus a resource type to enumerate, rather than
// ExpandPermission's single concrete object.
func (s *Service) validateLookupResourcesRequest(tenant string, subject tuple.Ref, permission, resourceType string) error {
	if err := s.validateObjectPermissionRequest(tenant, permission, resourceType); err != nil {
		return err
	}

	if subject.IsZero() {
		return &merrors.InvalidRequestError{Reason: "missing required field: subject"}
	}

	if _, ok := s.Registry.TypeDef(subject.Type); !ok {
		return &merrors.InvalidRequestError{Reason: "unknown subject type: " + subject.Type}
	}

	return nil
}

// writeRequest is the boundary shape for WriteRelationships/
// DeleteRelationships: tenant must be present, and every tuple must
// carry a complete object/relation/subject triple (spec §3's "a tuple
// with any of these absent is not representable" invariant).
type writeRequest struct {
	Tenant string `validate:"required"`
}

func (s *Service) validateWriteRequest(tenant string, tuples ...[]tuple.Tuple) error {
	if err := validate.Struct(writeRequest{Tenant: tenant}); err != nil {
		return &merrors.InvalidRequestError{Reason: "missing required field", Err: err}
	}

	for _, set := range tuples {
		for _, t := range set {
			if t.ObjectType == "" || t.ObjectID == "" || t.Relation == "" || t.SubjectType == "" || t.SubjectID == "" {
				return &merrors.InvalidRequestError{Reason: "incomplete tuple: " + t.ObjectType + ":" + t.ObjectID + "#" + t.Relation}
			}

			if _, ok := s.Registry.TypeDef(t.ObjectType); !ok {
				return &merrors.InvalidRequestError{Reason: "unknown object type: " + t.ObjectType}
			}
		}
	}

	return nil
}
