// Package paginate computes page-link sequences for paginated
// collections.
//
// Overview
//
// paginate has three parts:
//   - Metadata: immutable facts about a paginated set (current page,
//     page size, total entries) plus every derived quantity a view
//     needs (total pages, offset, previous/next page).
//   - Build: turns Metadata and Options into an ordered sequence of
//     typed link items (page numbers, gap markers, previous/next
//     controls) ready for a renderer.
//   - EntriesInfo: formats the "Displaying entries 6–10 of 26 in total"
//     summary line with singular/plural and zero/one/many branching.
//
// Every function is a pure transform of its inputs: the same metadata
// and options always produce the same sequence and the same summary,
// which makes output trivial to cache and to test. The package never
// emits markup; rendering link items as HTML is the job of a
// collaborator such as the htmlrender package.
package paginate
