package server

// Данный сервер просто объединяет специфичные HTTP сервера, отвечающие за обработку конкретных сущностей
type Server struct {
	ProfitServer
}

func NewServer(
	profitServer ProfitServer,
) Server {
	return Server{
		ProfitServer: profitServer,
	}
}
