package pedidos

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/xdoubleu/essentia/v2/pkg/contexttools"
	tpltools "github.com/xdoubleu/essentia/v2/pkg/tpl"
	"pedidos.sainthonore.com/internal/constants"
	"pedidos.sainthonore.com/internal/models"
)

func (app *Pedidos) templateRoutes(prefix string, mux *http.ServeMux) {
	mux.Handle(
		fmt.Sprintf("GET /%s/static/", prefix),
		http.StripPrefix(fmt.Sprintf("/%s", prefix), http.FileServerFS(app.static)),
	)
	mux.HandleFunc(
		fmt.Sprintf("GET /%s/{$}", prefix),
		app.Services.Auth.TemplateAccess(app.rootHandler),
	)
}

type calendarData struct {
	User string
}

func (app *Pedidos) rootHandler(w http.ResponseWriter, r *http.Request) {
	user := contexttools.GetValue[models.User](
		r.Context(),
		constants.UserContextKey,
	)
	if user == nil {
		panic(errors.New("not signed in"))
	}

	tpltools.RenderWithPanic(app.tpl, w, "calendar.html", calendarData{
		User: user.Name,
	})
}
