package seed_test

import (
	"context"
	"sync"
	"time"

	"github.com/tu-usuario/crm-pro/internal/application/seed"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
)

// memStore implementación en memoria del puerto de persistencia para los
// tests del pipeline. Soporta inyección de fallas por clase y clases
// deshabilitadas para simular despliegues con esquemas parciales.
type memStore struct {
	mu sync.Mutex

	tenants         map[string]*entity.Tenant
	users           map[string]*entity.User
	contacts        map[string]*entity.Contact
	deals           map[string]*entity.Deal
	tasks           map[string]*entity.Task
	products        map[string]*entity.Product
	orders          map[string]*entity.Order
	invoices        map[string]*entity.Invoice
	campaigns       map[string]*entity.Campaign
	campaignMembers map[string]*entity.CampaignMember
	leadSources     map[string]*entity.LeadSource
	tickets         map[string]*entity.SupportTicket
	ticketReplies   map[string]*entity.TicketReply
	auditLogs       map[string]*entity.AuditLog
	automationRuns  map[string]*entity.AutomationRun
	notifications   map[string]*entity.Notification

	unsupported map[seed.EntityKind]bool
	// failCreate se consulta antes de cada escritura; devolver un error
	// simula el rechazo del store para esa clase.
	failCreate func(kind seed.EntityKind) error
}

func newMemStore() *memStore {
	return &memStore{
		tenants:         make(map[string]*entity.Tenant),
		users:           make(map[string]*entity.User),
		contacts:        make(map[string]*entity.Contact),
		deals:           make(map[string]*entity.Deal),
		tasks:           make(map[string]*entity.Task),
		products:        make(map[string]*entity.Product),
		orders:          make(map[string]*entity.Order),
		invoices:        make(map[string]*entity.Invoice),
		campaigns:       make(map[string]*entity.Campaign),
		campaignMembers: make(map[string]*entity.CampaignMember),
		leadSources:     make(map[string]*entity.LeadSource),
		tickets:         make(map[string]*entity.SupportTicket),
		ticketReplies:   make(map[string]*entity.TicketReply),
		auditLogs:       make(map[string]*entity.AuditLog),
		automationRuns:  make(map[string]*entity.AutomationRun),
		notifications:   make(map[string]*entity.Notification),
		unsupported:     make(map[seed.EntityKind]bool),
	}
}

func (m *memStore) maybeFail(kind seed.EntityKind) error {
	if m.failCreate != nil {
		return m.failCreate(kind)
	}
	return nil
}

// ── Tenant y principal ────────────────────────────────────────────────────────

func (m *memStore) GetTenantBySubdomain(_ context.Context, subdomain string) (*entity.Tenant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, t := range m.tenants {
		if t.Subdomain == subdomain {
			cp := *t
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memStore) CreateTenant(_ context.Context, t *entity.Tenant) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *t
	m.tenants[t.ID] = &cp
	return nil
}

func (m *memStore) GetUserByEmail(_ context.Context, email string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memStore) CreateUser(_ context.Context, u *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *u
	m.users[u.ID] = &cp
	return nil
}

func (m *memStore) UpdateUserTenant(_ context.Context, userID, tenantID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[userID]
	if !ok {
		return nil
	}
	u.TenantID = tenantID
	return nil
}

// ── Entidades del CRM ─────────────────────────────────────────────────────────

func (m *memStore) CreateContact(_ context.Context, c *entity.Contact) error {
	if err := m.maybeFail(seed.KindContact); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *c
	m.contacts[c.ID] = &cp
	return nil
}

func (m *memStore) ListContacts(_ context.Context, tenantID string) ([]entity.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var list []entity.Contact
	for _, c := range m.contacts {
		if c.TenantID == tenantID {
			list = append(list, *c)
		}
	}
	return list, nil
}

func (m *memStore) LinkContactSource(_ context.Context, contactID, sourceID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.contacts[contactID]; ok {
		c.SourceID = sourceID
	}
	return nil
}

func (m *memStore) ClearContactSources(_ context.Context, tenantID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.contacts {
		if c.TenantID == tenantID {
			c.SourceID = ""
		}
	}
	return nil
}

func (m *memStore) CreateDeal(_ context.Context, d *entity.Deal) error {
	if err := m.maybeFail(seed.KindDeal); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *d
	m.deals[d.ID] = &cp
	return nil
}

func (m *memStore) ListDeals(_ context.Context, tenantID string) ([]entity.Deal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var list []entity.Deal
	for _, d := range m.deals {
		if d.TenantID == tenantID {
			list = append(list, *d)
		}
	}
	return list, nil
}

func (m *memStore) CreateTask(_ context.Context, t *entity.Task) error {
	if err := m.maybeFail(seed.KindTask); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *t
	m.tasks[t.ID] = &cp
	return nil
}

func (m *memStore) UpsertProduct(_ context.Context, p *entity.Product) error {
	if err := m.maybeFail(seed.KindProduct); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *p
	m.products[p.ID] = &cp
	return nil
}

func (m *memStore) ListProducts(_ context.Context, tenantID string) ([]entity.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var list []entity.Product
	for _, p := range m.products {
		if p.TenantID == tenantID {
			list = append(list, *p)
		}
	}
	return list, nil
}

func (m *memStore) CreateOrder(_ context.Context, o *entity.Order) error {
	if err := m.maybeFail(seed.KindOrder); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *o
	cp.Items = append([]entity.OrderItem(nil), o.Items...)
	m.orders[o.ID] = &cp
	return nil
}

func (m *memStore) ListOrders(_ context.Context, tenantID string) ([]entity.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var list []entity.Order
	for _, o := range m.orders {
		if o.TenantID == tenantID {
			cp := *o
			cp.Items = append([]entity.OrderItem(nil), o.Items...)
			list = append(list, cp)
		}
	}
	return list, nil
}

func (m *memStore) CreateInvoice(_ context.Context, i *entity.Invoice) error {
	if err := m.maybeFail(seed.KindInvoice); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *i
	m.invoices[i.ID] = &cp
	return nil
}

func (m *memStore) CreateCampaign(_ context.Context, c *entity.Campaign) error {
	if err := m.maybeFail(seed.KindCampaign); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *c
	m.campaigns[c.ID] = &cp
	return nil
}

func (m *memStore) CreateCampaignMember(_ context.Context, cm *entity.CampaignMember) error {
	if err := m.maybeFail(seed.KindCampaignMember); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *cm
	m.campaignMembers[cm.ID] = &cp
	return nil
}

func (m *memStore) UpsertLeadSource(_ context.Context, src *entity.LeadSource) error {
	if err := m.maybeFail(seed.KindLeadSource); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.leadSources {
		if s.TenantID == src.TenantID && s.Name == src.Name {
			s.Leads = src.Leads
			s.Conversions = src.Conversions
			s.TotalValue = src.TotalValue
			s.AvgValue = src.AvgValue
			s.ConversionRate = src.ConversionRate
			s.UpdatedAt = src.UpdatedAt
			return nil
		}
	}
	cp := *src
	m.leadSources[src.ID] = &cp
	return nil
}

func (m *memStore) ListLeadSources(_ context.Context, tenantID string) ([]entity.LeadSource, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var list []entity.LeadSource
	for _, s := range m.leadSources {
		if s.TenantID == tenantID {
			list = append(list, *s)
		}
	}
	return list, nil
}

func (m *memStore) CreateTicket(_ context.Context, t *entity.SupportTicket) error {
	if err := m.maybeFail(seed.KindTicket); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *t
	m.tickets[t.ID] = &cp
	return nil
}

func (m *memStore) CreateTicketReply(_ context.Context, r *entity.TicketReply) error {
	if err := m.maybeFail(seed.KindTicketReply); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *r
	m.ticketReplies[r.ID] = &cp
	return nil
}

func (m *memStore) CreateAuditLog(_ context.Context, a *entity.AuditLog) error {
	if err := m.maybeFail(seed.KindAuditLog); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *a
	m.auditLogs[a.ID] = &cp
	return nil
}

func (m *memStore) CreateAutomationRun(_ context.Context, r *entity.AutomationRun) error {
	if err := m.maybeFail(seed.KindAutomationRun); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *r
	m.automationRuns[r.ID] = &cp
	return nil
}

func (m *memStore) CreateNotification(_ context.Context, n *entity.Notification) error {
	if err := m.maybeFail(seed.KindNotification); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *n
	m.notifications[n.ID] = &cp
	return nil
}

// ── Operaciones genéricas ─────────────────────────────────────────────────────

// rowsOf devuelve (tenantID, createdAt) de cada fila de la clase. Las clases
// hijas heredan el tenant de su padre.
func (m *memStore) rowsOf(kind seed.EntityKind) [][2]any {
	var rows [][2]any
	add := func(tenantID string, at time.Time) {
		rows = append(rows, [2]any{tenantID, at})
	}
	switch kind {
	case seed.KindTenant:
		for _, r := range m.tenants {
			add(r.ID, r.CreatedAt)
		}
	case seed.KindUser:
		for _, r := range m.users {
			add(r.TenantID, r.CreatedAt)
		}
	case seed.KindContact:
		for _, r := range m.contacts {
			add(r.TenantID, r.CreatedAt)
		}
	case seed.KindDeal:
		for _, r := range m.deals {
			add(r.TenantID, r.CreatedAt)
		}
	case seed.KindTask:
		for _, r := range m.tasks {
			add(r.TenantID, r.CreatedAt)
		}
	case seed.KindProduct:
		for _, r := range m.products {
			add(r.TenantID, r.CreatedAt)
		}
	case seed.KindOrder:
		for _, r := range m.orders {
			add(r.TenantID, r.CreatedAt)
		}
	case seed.KindOrderItem:
		for _, o := range m.orders {
			for range o.Items {
				add(o.TenantID, o.CreatedAt)
			}
		}
	case seed.KindInvoice:
		for _, r := range m.invoices {
			add(r.TenantID, r.CreatedAt)
		}
	case seed.KindCampaign:
		for _, r := range m.campaigns {
			add(r.TenantID, r.CreatedAt)
		}
	case seed.KindCampaignMember:
		for _, cm := range m.campaignMembers {
			if c, ok := m.campaigns[cm.CampaignID]; ok {
				add(c.TenantID, cm.JoinedAt)
			}
		}
	case seed.KindLeadSource:
		for _, r := range m.leadSources {
			add(r.TenantID, r.CreatedAt)
		}
	case seed.KindTicket:
		for _, r := range m.tickets {
			add(r.TenantID, r.CreatedAt)
		}
	case seed.KindTicketReply:
		for _, tr := range m.ticketReplies {
			if t, ok := m.tickets[tr.TicketID]; ok {
				add(t.TenantID, tr.CreatedAt)
			}
		}
	case seed.KindAuditLog:
		for _, r := range m.auditLogs {
			add(r.TenantID, r.CreatedAt)
		}
	case seed.KindAutomationRun:
		for _, r := range m.automationRuns {
			add(r.TenantID, r.CreatedAt)
		}
	case seed.KindNotification:
		for _, r := range m.notifications {
			add(r.TenantID, r.CreatedAt)
		}
	}
	return rows
}

func (m *memStore) Count(_ context.Context, kind seed.EntityKind, tenantID string, from, to *time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, row := range m.rowsOf(kind) {
		if row[0].(string) != tenantID {
			continue
		}
		at := row[1].(time.Time)
		if from != nil && at.Before(*from) {
			continue
		}
		if to != nil && at.After(*to) {
			continue
		}
		n++
	}
	return n, nil
}

func (m *memStore) DeleteByTenant(_ context.Context, kind seed.EntityKind, tenantID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	switch kind {
	case seed.KindContact:
		for id, r := range m.contacts {
			if r.TenantID == tenantID {
				delete(m.contacts, id)
			}
		}
	case seed.KindDeal:
		for id, r := range m.deals {
			if r.TenantID == tenantID {
				delete(m.deals, id)
			}
		}
	case seed.KindTask:
		for id, r := range m.tasks {
			if r.TenantID == tenantID {
				delete(m.tasks, id)
			}
		}
	case seed.KindProduct:
		for id, r := range m.products {
			if r.TenantID == tenantID {
				delete(m.products, id)
			}
		}
	case seed.KindOrder:
		for id, r := range m.orders {
			if r.TenantID == tenantID {
				delete(m.orders, id)
			}
		}
	case seed.KindOrderItem:
		for _, o := range m.orders {
			if o.TenantID == tenantID {
				o.Items = nil
			}
		}
	case seed.KindInvoice:
		for id, r := range m.invoices {
			if r.TenantID == tenantID {
				delete(m.invoices, id)
			}
		}
	case seed.KindCampaign:
		for id, r := range m.campaigns {
			if r.TenantID == tenantID {
				delete(m.campaigns, id)
			}
		}
	case seed.KindCampaignMember:
		for id, cm := range m.campaignMembers {
			if c, ok := m.campaigns[cm.CampaignID]; ok && c.TenantID == tenantID {
				delete(m.campaignMembers, id)
			}
		}
	case seed.KindLeadSource:
		for id, r := range m.leadSources {
			if r.TenantID == tenantID {
				delete(m.leadSources, id)
			}
		}
	case seed.KindTicket:
		for id, r := range m.tickets {
			if r.TenantID == tenantID {
				delete(m.tickets, id)
			}
		}
	case seed.KindTicketReply:
		for id, tr := range m.ticketReplies {
			if t, ok := m.tickets[tr.TicketID]; ok && t.TenantID == tenantID {
				delete(m.ticketReplies, id)
			}
		}
	case seed.KindAuditLog:
		for id, r := range m.auditLogs {
			if r.TenantID == tenantID {
				delete(m.auditLogs, id)
			}
		}
	case seed.KindAutomationRun:
		for id, r := range m.automationRuns {
			if r.TenantID == tenantID {
				delete(m.automationRuns, id)
			}
		}
	case seed.KindNotification:
		for id, r := range m.notifications {
			if r.TenantID == tenantID {
				delete(m.notifications, id)
			}
		}
	}
	return nil
}

func (m *memStore) Supports(_ context.Context, kind seed.EntityKind) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return !m.unsupported[kind], nil
}
