// Package rest is the request-dispatch core shared by every resource
// controller.
//
// A controller declares an ordered table of routes; each route names an HTTP
// method, a path pattern, a handler and the middlewares that guard it. The
// [App] mounts controllers on a chi router, runs the global middlewares, picks
// the first matching route and runs its middlewares in declared order before
// the handler. Every error returned or panicked at any stage is handed to the
// [ExceptionFilter], which is the only place that turns errors into HTTP
// responses.
//
// A middleware stage has three outcomes:
//   - advance: return next(w, r);
//   - abort: return a non-nil error, the filter responds;
//   - terminal: write the response and return nil without calling next.
package rest
