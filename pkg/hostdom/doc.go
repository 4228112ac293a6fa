// Package hostdom declares the narrow interface the reconciler calls to
// mutate an external host tree. It is deliberately minimal: create/destroy
// host nodes, diff properties, and reposition nodes among siblings. The
// concrete host (a browser DOM, or anything DOM-shaped) is an external
// collaborator and is not implemented here — see pkg/hostdom/fakedom for
// an in-memory reference implementation used by this module's own tests.
package hostdom
