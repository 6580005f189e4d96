package seed

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/shopspring/decimal"
)

// Datos estáticos del escenario demo. Tablas fijas para que las corridas
// produzcan contenido plausible sin depender de generadores externos.

var firstNames = []string{
	"Aarav", "Vivaan", "Aditya", "Arjun", "Reyansh", "Ishaan", "Kabir",
	"Ananya", "Diya", "Saanvi", "Aadhya", "Myra", "Riya", "Priya",
	"Rohan", "Karan", "Nikhil", "Sneha", "Pooja", "Meera", "Rahul",
	"Amit", "Vikram", "Neha", "Kavya", "Tanvi", "Dev", "Sanjay",
}

var lastNames = []string{
	"Sharma", "Verma", "Patel", "Gupta", "Mehta", "Iyer", "Nair",
	"Reddy", "Singh", "Kumar", "Joshi", "Desai", "Kapoor", "Malhotra",
	"Chopra", "Bose", "Banerjee", "Rao", "Pillai", "Menon",
}

var companies = []string{
	"TechNova Solutions", "GreenLeaf Organics", "Skyline Infra",
	"BlueOcean Logistics", "Sunrise Textiles", "Apex Consulting",
	"UrbanNest Realty", "MedLife Pharma", "Quantum Analytics",
	"BrightPath Education", "SilverOak Hospitality", "FreshCart Retail",
	"IronGate Security", "CloudNine Travels", "Vertex Manufacturing",
}

var leadSourceNames = []string{
	"Website", "LinkedIn", "Referral", "Cold Call", "Trade Show",
	"Google Ads", "Email Campaign", "Partner",
}

var cities = []struct {
	City  string
	State string
}{
	{"Mumbai", "Maharashtra"},
	{"Delhi", "Delhi"},
	{"Bengaluru", "Karnataka"},
	{"Hyderabad", "Telangana"},
	{"Chennai", "Tamil Nadu"},
	{"Pune", "Maharashtra"},
	{"Ahmedabad", "Gujarat"},
	{"Kolkata", "West Bengal"},
	{"Jaipur", "Rajasthan"},
	{"Kochi", "Kerala"},
}

var dealNameTemplates = []string{
	"Licencia anual", "Implementación inicial", "Renovación de contrato",
	"Ampliación de plan", "Soporte premium", "Migración de datos",
	"Consultoría trimestral", "Integración API", "Capacitación de equipo",
	"Plan enterprise",
}

var lostReasons = []string{
	"presupuesto insuficiente", "eligió a un competidor",
	"proyecto cancelado", "sin respuesta", "tiempos incompatibles",
}

var taskTitles = []string{
	"Llamar para seguimiento", "Enviar propuesta", "Agendar demo",
	"Preparar cotización", "Revisar contrato", "Enviar recordatorio de pago",
	"Actualizar datos de contacto", "Coordinar reunión de cierre",
	"Enviar material de onboarding", "Verificar entrega",
}

var campaignChannels = []string{"email", "social", "ads", "webinar"}

var campaignNameTemplates = []string{
	"Newsletter mensual", "Lanzamiento de producto", "Oferta de temporada",
	"Webinar de producto", "Reactivación de clientes", "Promoción de referidos",
}

var ticketSubjects = []string{
	"No puedo iniciar sesión", "Error al exportar reporte",
	"Consulta sobre facturación", "Solicitud de nueva funcionalidad",
	"La integración dejó de sincronizar", "Problema con la carga de datos",
	"Duda sobre el plan contratado", "Demora en notificaciones",
}

var auditActions = []string{"create", "update", "delete", "login"}

var auditEntityTypes = []string{"contact", "deal", "task", "order", "invoice"}

var automationRules = []struct {
	Name    string
	Trigger string
}{
	{"asignar tareas de bienvenida", "contact_created"},
	{"mover deal a seguimiento", "deal_stage_changed"},
	{"escalar tarea vencida", "task_overdue"},
	{"notificar deal ganado", "deal_stage_changed"},
}

var notificationKinds = []struct {
	Kind  string
	Title string
}{
	{"deal_won", "Deal ganado"},
	{"task_due", "Tarea por vencer"},
	{"ticket_opened", "Nuevo ticket de soporte"},
	{"campaign_done", "Campaña finalizada"},
}

// productCatalog catálogo fijo de 15 productos con IDs estables para que el
// upsert repetido no duplique el catálogo.
var productCatalog = []struct {
	ID       string
	SKU      string
	Name     string
	Category string
	Cost     string
	Sale     string
}{
	{"product-1", "SW-CRM-BAS", "CRM Básico (licencia anual)", "software", "12000", "24999"},
	{"product-2", "SW-CRM-PRO", "CRM Profesional (licencia anual)", "software", "28000", "59999"},
	{"product-3", "SW-CRM-ENT", "CRM Enterprise (licencia anual)", "software", "65000", "149999"},
	{"product-4", "SV-IMPL", "Implementación inicial", "servicio", "15000", "35000"},
	{"product-5", "SV-MIGR", "Migración de datos", "servicio", "10000", "25000"},
	{"product-6", "SV-TRAIN", "Capacitación de equipo (jornada)", "servicio", "6000", "15000"},
	{"product-7", "SV-SUPP-STD", "Soporte estándar (mensual)", "servicio", "2000", "4999"},
	{"product-8", "SV-SUPP-PRE", "Soporte premium (mensual)", "servicio", "5000", "12999"},
	{"product-9", "AD-USERS-5", "Paquete 5 usuarios adicionales", "addon", "3000", "7500"},
	{"product-10", "AD-STORAGE", "Almacenamiento extra 100GB", "addon", "800", "1999"},
	{"product-11", "AD-API", "Acceso API avanzado", "addon", "4000", "9999"},
	{"product-12", "AD-REPORTS", "Reportes personalizados", "addon", "3500", "8999"},
	{"product-13", "SV-CONS", "Consultoría de procesos (hora)", "servicio", "1500", "3500"},
	{"product-14", "AD-WHATSAPP", "Integración WhatsApp Business", "addon", "2500", "6499"},
	{"product-15", "SV-AUDIT", "Auditoría de datos", "servicio", "8000", "18000"},
}

func pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.Intn(len(items))]
}

func fullName(rng *rand.Rand) string {
	return pick(rng, firstNames) + " " + pick(rng, lastNames)
}

func emailFor(name string, i int) string {
	slug := strings.ToLower(strings.ReplaceAll(name, " ", "."))
	return fmt.Sprintf("%s%d@example.com", slug, i)
}

func phone(rng *rand.Rand) string {
	return fmt.Sprintf("+91 9%09d", rng.Intn(1_000_000_000))
}

func money(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(fmt.Sprintf("catálogo demo con monto inválido %q: %v", s, err))
	}
	return d
}
