package main

import (
	appfx "github.com/rodrigordgfs/CashWise-API/internal/fx"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		appfx.AppModule,
	).Run()
}
