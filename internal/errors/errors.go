// Package errors provides sentinel errors and custom error types for the kit application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrObjectNotFound indicates that a hash has no backing object in the store
	ErrObjectNotFound = errors.New("object not found")

	// ErrPathNotFound indicates that an add/rm/reset target or a remote's
	// metadata directory does not exist
	ErrPathNotFound = errors.New("path not found")

	// ErrRefNotFound indicates that a branch, remote, or stash slot does not exist
	ErrRefNotFound = errors.New("ref not found")

	// ErrUnsupportedRemoteScheme indicates a remote URL outside the file:// transport
	ErrUnsupportedRemoteScheme = errors.New("unsupported remote scheme")

	// ErrUnmergedBranchDelete indicates an attempt to delete an unmerged branch without force
	ErrUnmergedBranchDelete = errors.New("branch not merged")
)

// ObjectNotFoundError reports a read of a hash with no backing object
type ObjectNotFoundError struct {
	Hash string
}

func (e *ObjectNotFoundError) Error() string {
	return fmt.Sprintf("object %s not found", e.Hash)
}

// Is returns true if the target error is ErrObjectNotFound
func (e *ObjectNotFoundError) Is(target error) bool {
	return target == ErrObjectNotFound
}

// NewObjectNotFoundError creates a new ObjectNotFoundError
func NewObjectNotFoundError(hash string) *ObjectNotFoundError {
	return &ObjectNotFoundError{Hash: hash}
}

// PathNotFoundError reports a working-tree or remote path that does not exist
type PathNotFoundError struct {
	Path string
}

func (e *PathNotFoundError) Error() string {
	return fmt.Sprintf("path %s does not exist", e.Path)
}

// Is returns true if the target error is ErrPathNotFound
func (e *PathNotFoundError) Is(target error) bool {
	return target == ErrPathNotFound
}

// NewPathNotFoundError creates a new PathNotFoundError
func NewPathNotFoundError(path string) *PathNotFoundError {
	return &PathNotFoundError{Path: path}
}

// RefNotFoundError reports a missing branch, remote-tracking ref, or stash slot
type RefNotFoundError struct {
	Name string
}

func (e *RefNotFoundError) Error() string {
	return fmt.Sprintf("ref %s does not exist", e.Name)
}

// Is returns true if the target error is ErrRefNotFound
func (e *RefNotFoundError) Is(target error) bool {
	return target == ErrRefNotFound
}

// NewRefNotFoundError creates a new RefNotFoundError
func NewRefNotFoundError(name string) *RefNotFoundError {
	return &RefNotFoundError{Name: name}
}

// UnsupportedRemoteSchemeError reports a remote whose URL is not file://
type UnsupportedRemoteSchemeError struct {
	Remote string
	URL    string
}

func (e *UnsupportedRemoteSchemeError) Error() string {
	return fmt.Sprintf("remote %s: unsupported scheme in %q (only file:// is supported)", e.Remote, e.URL)
}

// Is returns true if the target error is ErrUnsupportedRemoteScheme
func (e *UnsupportedRemoteSchemeError) Is(target error) bool {
	return target == ErrUnsupportedRemoteScheme
}

// NewUnsupportedRemoteSchemeError creates a new UnsupportedRemoteSchemeError
func NewUnsupportedRemoteSchemeError(remote, url string) *UnsupportedRemoteSchemeError {
	return &UnsupportedRemoteSchemeError{Remote: remote, URL: url}
}

// UnmergedBranchDeleteError reports a delete of a branch whose tip is not
// reachable from HEAD, attempted without force
type UnmergedBranchDeleteError struct {
	BranchName string
}

func (e *UnmergedBranchDeleteError) Error() string {
	return fmt.Sprintf("branch %s is not merged; use -D to force deletion", e.BranchName)
}

// Is returns true if the target error is ErrUnmergedBranchDelete
func (e *UnmergedBranchDeleteError) Is(target error) bool {
	return target == ErrUnmergedBranchDelete
}

// NewUnmergedBranchDeleteError creates a new UnmergedBranchDeleteError
func NewUnmergedBranchDeleteError(branchName string) *UnmergedBranchDeleteError {
	return &UnmergedBranchDeleteError{BranchName: branchName}
}
