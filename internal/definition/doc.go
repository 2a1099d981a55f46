// Package definition loads, checks and resolves YAML entity definition files.
//
// A definition file lists entities and the attributes they expose. Options
// shared by several exposures live in blocks, which may nest:
//
//	version: "1"
//	entities:
//	  - name: UserEntity
//	    options:                 # applies to every exposure of the entity
//	      safe: true
//	    exposures:
//	      - attributes: [id, name]
//	    blocks:
//	      - options:
//	          if: { admin: is_admin }
//	        exposures:
//	          - attributes: email
//	            options: { as: mail, if: verified }
//	        blocks:
//	          - options: { unless: suspended }
//	            exposures:
//	              - attributes: phone
//
// # Resolution order
//
// Within a scope the scope's own exposures come first, then its blocks in
// order, depth first. Each exposed attribute gets its own exposure.Config whose
// block layers are the options of every enclosing scope, outermost first.
//
// # Checks
//
// Validate reports every problem in a file at once (unknown option keys with
// suggestions, as on several attributes, duplicates), whereas Resolve stops at
// the first invalid option set.
package definition
