package server

// indexPage is the self-contained web form served at /. It posts the pain
// point to /api/analyze and renders the JSON response inline.
const indexPage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Pain Point Agent</title>
  <style>
    body { font-family: -apple-system, "Segoe UI", Roboto, sans-serif; max-width: 720px;
           margin: 0 auto; padding: 2rem 1.5rem; color: #1f2328; line-height: 1.5; }
    h1 { font-size: 1.5rem; }
    label { display: block; margin-top: 1rem; font-weight: 600; }
    textarea, input, select { width: 100%; padding: .5rem; margin-top: .25rem;
           border: 1px solid #d1d9e0; border-radius: 6px; font: inherit; box-sizing: border-box; }
    textarea { min-height: 6rem; }
    button { margin-top: 1.25rem; padding: .6rem 1.4rem; background: #0969da; color: #fff;
           border: none; border-radius: 6px; font: inherit; cursor: pointer; }
    button:disabled { opacity: .5; cursor: wait; }
    .solution { border: 1px solid #d1d9e0; border-radius: 8px; padding: 1rem; margin-top: 1rem; }
    .solution h3 { margin: 0 0 .5rem; }
    .score { color: #59636e; font-size: .9rem; }
    .error { color: #cf222e; margin-top: 1rem; }
  </style>
</head>
<body>
  <h1>Pain Point Agent</h1>
  <p>Describe a business pain point and get matched product recommendations.</p>

  <form id="analyze-form">
    <label for="description">Pain point description</label>
    <textarea id="description" required minlength="10"
      placeholder="e.g. Our support team is overwhelmed by repetitive tickets..."></textarea>

    <label for="industry">Industry (optional)</label>
    <input id="industry" placeholder="e.g. e-commerce">

    <label for="company-size">Company size</label>
    <select id="company-size">
      <option value="">unspecified</option>
      <option>startup</option><option>small</option><option>medium</option>
      <option>large</option><option>enterprise</option>
    </select>

    <label for="urgency">Urgency</label>
    <select id="urgency">
      <option value="">unspecified</option>
      <option>low</option><option>medium</option><option>high</option>
    </select>

    <button type="submit" id="submit-btn">Analyze</button>
  </form>

  <div id="results"></div>

  <script>
    const form = document.getElementById('analyze-form');
    const results = document.getElementById('results');
    const btn = document.getElementById('submit-btn');

    form.addEventListener('submit', async (ev) => {
      ev.preventDefault();
      btn.disabled = true;
      results.innerHTML = '';

      const context = {};
      const industry = document.getElementById('industry').value.trim();
      const size = document.getElementById('company-size').value;
      const urgency = document.getElementById('urgency').value;
      if (industry) context.industry = industry;
      if (size) context.company_size = size;
      if (urgency) context.urgency_level = urgency;

      const payload = { pain_point: { description: document.getElementById('description').value } };
      if (Object.keys(context).length) payload.pain_point.context = context;

      try {
        const res = await fetch('/api/analyze', {
          method: 'POST',
          headers: { 'Content-Type': 'application/json' },
          body: JSON.stringify(payload),
        });
        const data = await res.json();
        if (!res.ok) {
          results.innerHTML = '<p class="error">' + (data.error || 'analysis failed') + '</p>';
          return;
        }
        render(data);
      } catch (err) {
        results.innerHTML = '<p class="error">' + err + '</p>';
      } finally {
        btn.disabled = false;
      }
    });

    function render(data) {
      let html = '<h2>Analysis</h2><p>' + esc(data.analysis.pain_point_summary) + '</p>';
      const solutions = data.recommended_solutions || [];
      if (!solutions.length) {
        html += '<p>No matching solutions found.</p>';
      }
      for (const s of solutions) {
        html += '<div class="solution"><h3>' + esc(s.solution_name) + '</h3>' +
          '<p class="score">relevance ' + s.relevance_score.toFixed(2) +
          ' · complexity ' + esc(s.complexity_level) + '</p>' +
          '<p>' + esc(s.how_it_helps) + '</p></div>';
      }
      results.innerHTML = html;
    }

    function esc(s) {
      return String(s).replace(/[&<>"]/g, c => ({'&':'&amp;','<':'&lt;','>':'&gt;','"':'&quot;'}[c]));
    }
  </script>
</body>
</html>`
