// Package cli provides the interactive travel planner client.
//
// The REPL stands in for a browser: each command navigates to a route, the
// route guard decides whether the stored identity may see it, and the
// admitted view is rendered (or, for forms, prompted for). List views own a
// listsync.Controller that is rebuilt every time the view is mounted.
//
// Routes:
//   - /                        home
//   - /login, /register        public only
//   - /dashboard               any identity
//   - /travel-plans            own plans, or every plan for admins
//   - /travel-plans/create     new plan form
//   - /travel-plans/edit/:id   edit form, prefilled from the server
//   - /users                   administrators only
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
