// Package melt flattens nested JSON documents into relational entities.
//
// Melting turns one document into rows: scalar fields stay on the row,
// arrays become child entities with foreign keys back to their parent, and
// large nested objects are extracted into their own entity types:
//
//	m := melt.NewMelter()
//	entities := m.Melt(map[string]any{
//	    "id":   1,
//	    "name": "Alice",
//	    "posts": []any{
//	        map[string]any{"id": 10, "title": "First"},
//	    },
//	})
//	// entities[0]: type "root" with id and name
//	// entities[1]: type "root_posts" with a posts_id foreign key
//
// Melting is a pure transform; writing entities anywhere is the caller's
// concern.
package melt
