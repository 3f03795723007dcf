// Package collection defines the data model shared by every selkit engine
// component: opaque item keys, item descriptors, and the immutable ordered
// snapshot (View) that a host hands the engine on each render.
//
// # Snapshot Discipline
//
// A View is built once and never mutated. When the hosted collection changes
// in any way (items added, removed, reordered, enabled, or disabled) the
// host constructs a new View and passes it to the engine, which revalidates
// its selection and focus state against the new key set. This mirrors the
// render loop of the terminal UIs the engine is built for: state flows one
// way, from host data to engine decisions.
//
// Because Views are immutable and the engine runs synchronously inside the
// host's event loop, no locking is needed anywhere in the engine.
//
// # Keys
//
// Keys are opaque strings compared only for equality. Order comes from the
// View's node order, never from the keys themselves, so hosts are free to use
// uuids, paths, or row ids.
package collection
