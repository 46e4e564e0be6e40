package common

var ASCII_ART = `
		  [91m ██████╗  ██████╗ [0m
		  [91m██╔════╝ ██╔═══██╗[0m
		  [91m██║  ███╗██║   ██║[0m
		  [91m██║   ██║██║   ██║[0m
		  [91m╚██████╔╝╚██████╔╝[0m
		  [91m ╚═════╝  ╚═════╝ [0m

	   [92m██████╗ ███████╗██████╗ ██╗███████╗[0m
	   [92m██╔══██╗██╔════╝██╔══██╗██║██╔════╝[0m
	   [92m██████╔╝█████╗  ██║  ██║██║███████╗[0m
	   [92m██╔══██╗██╔══╝  ██║  ██║██║╚════██║[0m
	   [92m██║  ██║███████╗██████╔╝██║███████║[0m
	   [92m╚═╝  ╚═╝╚══════╝╚═════╝ ╚═╝╚══════╝[0m

   [94m███████╗███████╗██████╗ ██╗   ██╗███████╗██████╗ [0m
   [94m██╔════╝██╔════╝██╔══██╗██║   ██║██╔════╝██╔══██╗[0m
   [94m███████╗█████╗  ██████╔╝██║   ██║█████╗  ██████╔╝[0m
   [94m╚════██║██╔══╝  ██╔══██╗╚██╗ ██╔╝██╔══╝  ██╔══██╗[0m
   [94m███████║███████╗██║  ██║ ╚████╔╝ ███████╗██║  ██║[0m
   [94m╚══════╝╚══════╝╚═╝  ╚═╝  ╚═══╝  ╚══════╝╚═╝  ╚═╝[0m
   [93m              >>> redikv server <<<              [0m
`
