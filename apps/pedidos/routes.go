package pedidos

import (
	"fmt"
	"net/http"
)

func (app *Pedidos) Routes(prefix string, mux *http.ServeMux) {
	app.templateRoutes(prefix, mux)
	app.apiRoutes(fmt.Sprintf("/%s/api", prefix), mux)
}
