// Package formdef loads form definitions: which presenter each field uses and
// the static props registered with it. Files may be JSON or YAML.
//
//	form:
//	  id: article
//	  action: /articles
//	fields:
//	  - name: title
//	    component: text
//	    props:
//	      placeholder: Article title
//	      required: true
//	  - name: status
//	    component: select
//	    props:
//	      options: [draft, published]
package formdef
