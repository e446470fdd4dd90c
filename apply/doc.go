// Package apply commits a changeset.MeshChange to a meshmodel.HostMesh in
// the four ordered phases spec.md §4.7 requires: create vertices, create
// edges, create faces (consolidating side flags and the opposite-normals
// bit), then flip and delete, finishing with a reindex.
//
// Grounded on world.go's World.Step: a fixed sequence of phases over one
// struct with no interleaving, generalized from "integrate, broad, narrow,
// solve position, update, solve velocity, sleep" to "create verts, create
// edges, create faces, flip/delete, reindex."
package apply

import "github.com/akmonengine/meshbool/meshmodel"

// NotFound mirrors meshmodel.NotFound for this package's own lookups.
const NotFound = meshmodel.NotFound
