// Package logger provides a singleton Zap logger with context-based scoping.
//
//   - Singleton: una sola instancia global inicializada con Init().
//   - Context scoping: cada request lleva un logger con request_id/user_id
//     sin crear un core nuevo.
//   - Environments: "dev" consola con colores, "prod" JSON.
package logger
