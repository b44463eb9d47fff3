package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.MustParse("pt-BR")

	// Page chrome
	message.SetString(lang, "title.users", "Usuários | %s")
	message.SetString(lang, "title.user_detail", "Usuário | %s")
	message.SetString(lang, "nav.users", "Usuários")
	message.SetString(lang, "users.heading", "Usuários")
	message.SetString(lang, "users.detail.heading", "Usuário")
	message.SetString(lang, "users.create.heading", "Criar usuário")
	message.SetString(lang, "users.lookup.heading", "Buscar usuário")

	// Table columns
	message.SetString(lang, "users.col.select", "Selecionar")
	message.SetString(lang, "users.col.id", "ID do usuário")
	message.SetString(lang, "users.col.email", "E-mail")
	message.SetString(lang, "users.col.display_name", "Nome")
	message.SetString(lang, "users.col.role", "Função")
	message.SetString(lang, "users.col.created_at", "Criado")
	message.SetString(lang, "users.col.updated_at", "Atualizado")
	message.SetString(lang, "users.col.actions", "Ações")

	// Actions
	message.SetString(lang, "users.action.edit", "Editar")
	message.SetString(lang, "users.action.delete", "Excluir")
	message.SetString(lang, "users.action.reset_password", "Redefinir senha")
	message.SetString(lang, "users.action.create", "Criar usuário")
	message.SetString(lang, "users.action.lookup", "Buscar")
	message.SetString(lang, "users.action.close", "Voltar para usuários")
	message.SetString(lang, "users.action.save", "Salvar alterações")

	// Detail tabs
	message.SetString(lang, "users.tab.details", "Detalhes")
	message.SetString(lang, "users.tab.edit", "Editar")
	message.SetString(lang, "users.tab.activity", "Atividade")

	// Fields
	message.SetString(lang, "users.field.user_id", "ID do usuário")
	message.SetString(lang, "users.field.email", "E-mail")
	message.SetString(lang, "users.field.display_name", "Nome de exibição")
	message.SetString(lang, "users.field.role", "Função")
	message.SetString(lang, "users.field.created_at", "Criado em")
	message.SetString(lang, "users.field.updated_at", "Atualizado em")

	// Role labels
	message.SetString(lang, "label.role.admin", "Administrador")
	message.SetString(lang, "label.role.member", "Membro")
	message.SetString(lang, "label.role.viewer", "Leitor")
	message.SetString(lang, "label.unspecified", "Não especificado")

	// Table states
	message.SetString(lang, "users.loading", "Carregando usuários...")
	message.SetString(lang, "users.selected_count", "%d selecionados")
	message.SetString(lang, "error.no_users", "Nenhum usuário encontrado.")

	// Activity tab
	message.SetString(lang, "users.activity.empty", "Nenhuma atividade registrada.")
	message.SetString(lang, "users.activity.action", "Ação")
	message.SetString(lang, "users.activity.actor", "Operador")
	message.SetString(lang, "users.activity.at", "Quando")
	message.SetString(lang, "audit.action.user_created", "Usuário criado")
	message.SetString(lang, "audit.action.user_updated", "Usuário atualizado")
	message.SetString(lang, "audit.action.user_deleted", "Usuário excluído")
	message.SetString(lang, "audit.action.password_reset", "Senha redefinida")

	// Password reset
	message.SetString(lang, "users.reset.success", "Senha redefinida. Compartilhe o segredo de uso único abaixo.")
	message.SetString(lang, "users.reset.secret_label", "Segredo de uso único")

	// Outcomes
	message.SetString(lang, "users.create.success", "Usuário criado.")
	message.SetString(lang, "users.update.success", "Usuário atualizado.")
	message.SetString(lang, "users.delete.success", "Usuário excluído.")

	// Errors
	message.SetString(lang, "error.user_directory_unavailable", "Diretório de usuários indisponível.")
	message.SetString(lang, "error.users_unavailable", "Não foi possível carregar os usuários.")
	message.SetString(lang, "error.user_not_found", "Usuário não encontrado.")
	message.SetString(lang, "error.user_id_required", "O ID do usuário é obrigatório.")
	message.SetString(lang, "error.user_email_required", "O e-mail é obrigatório.")
	message.SetString(lang, "error.user_role_invalid", "Função inválida.")
	message.SetString(lang, "error.user_create_invalid", "Requisição de criação inválida.")
	message.SetString(lang, "error.user_create_failed", "Não foi possível criar o usuário.")
	message.SetString(lang, "error.user_update_invalid", "Requisição de atualização inválida.")
	message.SetString(lang, "error.user_update_failed", "Não foi possível atualizar o usuário.")
	message.SetString(lang, "error.user_delete_failed", "Não foi possível excluir o usuário.")
	message.SetString(lang, "error.password_reset_failed", "Não foi possível redefinir a senha.")
	message.SetString(lang, "error.selection_invalid", "Requisição de seleção inválida.")
	message.SetString(lang, "error.csrf_invalid", "Origem da requisição rejeitada.")
	message.SetString(lang, "error.forbidden", "Você não tem permissão para fazer isso.")
}
