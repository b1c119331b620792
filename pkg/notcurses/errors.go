package notcurses

import (
	"errors"
	"fmt"

	"github.com/bdchik/notcurses-go/internal/bindings"
)

var (
	// ErrClosed reports use of a context after Close, or a second Close.
	ErrClosed = errors.New("notcurses: context closed")

	// ErrStdPlane reports an attempt to destroy or reparent the standard
	// plane, which is owned by the context.
	ErrStdPlane = errors.New("notcurses: operation not permitted on the standard plane")

	// ErrPlaneDestroyed reports use of a plane after Destroy.
	ErrPlaneDestroyed = errors.New("notcurses: plane destroyed")

	// ErrNotBuilt reports that the native library was not linked into this
	// binary (non-cgo build, or Windows).
	ErrNotBuilt = bindings.ErrNotBuilt

	// ErrCGONotEnabled signals a build without cgo.
	ErrCGONotEnabled = bindings.ErrCGONotEnabled

	// ErrNative reports a failure inside the native library: a negative
	// return code or NULL result from the wrapped call. The underlying
	// detail is preserved in the error message.
	ErrNative = errors.New("notcurses: native call failed")
)

// remapError lifts bindings-layer errors into the public error space. The
// build sentinels pass through so callers can errors.Is against them; any
// other binding error is a native failure and gets marked with ErrNative.
func remapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, bindings.ErrNotBuilt) || errors.Is(err, bindings.ErrCGONotEnabled) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrNative, err)
}
